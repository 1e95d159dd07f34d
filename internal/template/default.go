package template

// DefaultCSSTemplate renders a palette as CSS custom properties. Paired
// with the base theme, it restyles the editor without rebuilding it.
const DefaultCSSTemplate = `/* {{name}} */
{{selector}} {
  --cm-background: {{background}};
  --cm-foreground: {{foreground}};
  --cm-selection: {{selection}};
  --cm-cursor: {{cursor}};
  --cm-dropdown-background: {{dropdownBackground}};
  --cm-dropdown-border: {{dropdownBorder}};
  --cm-active-line: {{activeLine}};
  --cm-matching-bracket: {{matchingBracket}};
  --cm-keyword: {{keyword}};
  --cm-storage: {{storage}};
  --cm-variable: {{variable}};
  --cm-parameter: {{parameter}};
  --cm-function: {{function}};
  --cm-string: {{string}};
  --cm-constant: {{constant}};
  --cm-type: {{type}};
  --cm-class: {{class}};
  --cm-number: {{number}};
  --cm-comment: {{comment}};
  --cm-heading: {{heading}};
  --cm-invalid: {{invalid}};
  --cm-regexp: {{regexp}};
}
`
