// meta/meta.go
package meta

// CONFIG_DIR is where the optional agent config file is searched.
const CONFIG_DIR = "."

// MAX_TURNS is the server-side turn cap; matches never run past it.
const MAX_TURNS = 100
