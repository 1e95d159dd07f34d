package template

// DefaultTSTemplate renders a CodeMirror theme module. {{chrome}} and
// {{highlight}} are object/array literals referencing config.<role>.
const DefaultTSTemplate = `import {EditorView} from '@codemirror/view'
import {Extension} from '@codemirror/state'
import {HighlightStyle, tags as t} from '@codemirror/highlight'

export const config = {
  name: '{{exportName}}',
  dark: {{dark}},
  background: '{{background}}',
  foreground: '{{foreground}}',
  selection: '{{selection}}',
  cursor: '{{cursor}}',
  dropdownBackground: '{{dropdownBackground}}',
  dropdownBorder: '{{dropdownBorder}}',
  activeLine: '{{activeLine}}',
  matchingBracket: '{{matchingBracket}}',
  keyword: '{{keyword}}',
  storage: '{{storage}}',
  variable: '{{variable}}',
  parameter: '{{parameter}}',
  function: '{{function}}',
  string: '{{string}}',
  constant: '{{constant}}',
  type: '{{type}}',
  class: '{{class}}',
  number: '{{number}}',
  comment: '{{comment}}',
  heading: '{{heading}}',
  invalid: '{{invalid}}',
  regexp: '{{regexp}}',
}

export const {{exportName}}Theme = EditorView.theme({{chrome}}, {dark: config.dark})

export const {{exportName}}HighlightStyle = HighlightStyle.define({{highlight}})

export const {{exportName}}: Extension = [
  {{exportName}}Theme,
  {{exportName}}HighlightStyle,
]
`
