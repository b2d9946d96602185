package embedded

import _ "embed"

//go:embed "configs/elodiff.toml"
var DefaultConfig string
