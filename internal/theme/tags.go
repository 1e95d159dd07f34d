package theme

// Tag is a highlight tag from the editor engine's tag vocabulary.
// Modifier, when set, wraps the base tag: Function(TagVariableName) is
// rendered as "function(variableName)".
type Tag struct {
	Name     string
	Modifier string
}

// String renders the tag the way the engine spells it.
func (t Tag) String() string {
	if t.Modifier == "" {
		return t.Name
	}
	return t.Modifier + "(" + t.Name + ")"
}

// Base returns t without its modifier.
func (t Tag) Base() Tag { return Tag{Name: t.Name} }

func modified(mod string, t Tag) Tag { return Tag{Name: t.Name, Modifier: mod} }

// Function marks a tag as naming a function, e.g. function(variableName).
func Function(t Tag) Tag { return modified("function", t) }

// Special marks a tag as a special variant, e.g. special(string).
func Special(t Tag) Tag { return modified("special", t) }

// Constant marks a tag as constant, e.g. constant(name).
func Constant(t Tag) Tag { return modified("constant", t) }

// Standard marks a tag as a standard library name, e.g. standard(name).
func Standard(t Tag) Tag { return modified("standard", t) }

// Definition marks a tag as being defined at this position.
func Definition(t Tag) Tag { return modified("definition", t) }

var (
	TagKeyword               = Tag{Name: "keyword"}
	TagName                  = Tag{Name: "name"}
	TagDeleted               = Tag{Name: "deleted"}
	TagCharacter             = Tag{Name: "character"}
	TagMacroName             = Tag{Name: "macroName"}
	TagPropertyName          = Tag{Name: "propertyName"}
	TagProcessingInstruction = Tag{Name: "processingInstruction"}
	TagString                = Tag{Name: "string"}
	TagInserted              = Tag{Name: "inserted"}
	TagVariableName          = Tag{Name: "variableName"}
	TagLabelName             = Tag{Name: "labelName"}
	TagColor                 = Tag{Name: "color"}
	TagSeparator             = Tag{Name: "separator"}
	TagClassName             = Tag{Name: "className"}
	TagNumber                = Tag{Name: "number"}
	TagChanged               = Tag{Name: "changed"}
	TagAnnotation            = Tag{Name: "annotation"}
	TagModifier              = Tag{Name: "modifier"}
	TagSelf                  = Tag{Name: "self"}
	TagNamespace             = Tag{Name: "namespace"}
	TagTypeName              = Tag{Name: "typeName"}
	TagOperator              = Tag{Name: "operator"}
	TagOperatorKeyword       = Tag{Name: "operatorKeyword"}
	TagURL                   = Tag{Name: "url"}
	TagEscape                = Tag{Name: "escape"}
	TagRegexp                = Tag{Name: "regexp"}
	TagLink                  = Tag{Name: "link"}
	TagMeta                  = Tag{Name: "meta"}
	TagComment               = Tag{Name: "comment"}
	TagStrong                = Tag{Name: "strong"}
	TagEmphasis              = Tag{Name: "emphasis"}
	TagHeading               = Tag{Name: "heading"}
	TagAtom                  = Tag{Name: "atom"}
	TagBool                  = Tag{Name: "bool"}
	TagInvalid               = Tag{Name: "invalid"}
	TagStrikethrough         = Tag{Name: "strikethrough"}
)
