package seeddata

import _ "embed"

//go:embed gateways.json
var GatewaysJSON []byte
