package templates

import _ "embed"

//go:embed comparison.html
var ComparisonHTML string
