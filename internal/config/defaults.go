package config

// defaultConfigYAML is the embedded default settings layer, used when no
// config file is found. Keys left at zero defer to the framework defaults.
var defaultConfigYAML = []byte(`
fps: 0
cols: 0
rows: 0
renderer: text
restore_state: false
allow_select: false
`)
