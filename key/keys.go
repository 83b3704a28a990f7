// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Quality Selection - these keys hold the persisted automatic selection axis.
const (
	QualityAlways = "quality.always"
)

// Media Playback - these keys configure how the chosen stream is handed off.
const (
	PlayerDefault  = "player.default"
	PlayerArgs     = "player.args"
	PlayerPrintURL = "player.print_url"
)

// Broadcaster Cache - these keys govern the locally remembered broadcasters.
const (
	BroadcastersSuggest = "broadcasters.suggest"
)

// Archived Videos - these keys tune the listing of past broadcasts.
const (
	VodsLimit = "vods.limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
