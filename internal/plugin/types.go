// Package plugin provides discovery and execution of out-of-process action
// plugins. Plugins receive a JSON request on stdin and answer with a JSON
// response on stdout, which keeps OS-automation code out of the daemon.
package plugin

import "encoding/json"

// Manifest describes a plugin's metadata and capabilities, read from the
// plugin.json file in its directory.
type Manifest struct {
	Name         string          `json:"name"`
	Version      string          `json:"version"`
	Description  string          `json:"description"`
	Executable   string          `json:"executable"`
	Actions      []string        `json:"actions"`
	ConfigSchema json.RawMessage `json:"configSchema,omitempty"`
}

// Request is sent to a plugin for execution. Gesture names the event that
// triggered the action; Params carries action-specific arguments such as
// pointer coordinates or a scroll direction.
type Request struct {
	Action  string          `json:"action"`
	Gesture string          `json:"gesture"`
	Config  json.RawMessage `json:"config,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is what a plugin writes back after handling a request.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Plugin is a discovered plugin with its manifest and resolved paths.
type Plugin struct {
	Manifest   Manifest
	Path       string
	Executable string
}

// Supports reports whether the plugin declares the given action.
func (p *Plugin) Supports(action string) bool {
	for _, a := range p.Manifest.Actions {
		if a == action {
			return true
		}
	}
	return false
}
