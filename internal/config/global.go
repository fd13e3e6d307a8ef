// SPDX-License-Identifier: MPL-2.0

package config

// dirOverride redirects the config directory, primarily so tests never
// touch the real user configuration.
var dirOverride string

// SetDirOverride points the config directory at dir. Pass "" to restore
// platform resolution.
func SetDirOverride(dir string) {
	dirOverride = dir
}
