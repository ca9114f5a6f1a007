package savekeeper

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Save profile and mod manager for FANTASY LIFE i"
	MsgSlotsShort   = "Manage save slots in a profile"
	MsgBackupsShort = "Manage manual backups of a slot"
	MsgModsShort    = "Install, toggle, and remove mods"
	MsgPathsShort   = "Validate and discover game and save locations"
	MsgBypassShort  = "Manage the anti-cheat launcher bypass"
	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProfile = "Profile root directory (the folder the game saves into)"
	MsgFlagGame    = "Game installation root (defaults to the configured path)"
	MsgFlagName    = "Display name (a random one is generated when omitted)"
	MsgFlagYes     = "Skip confirmation prompts"

	// Status messages
	MsgNoSlots         = "No slots yet. Use 'slots init' to capture the current save, or 'slots create' for an empty slot."
	MsgNoBackups       = "No backups for this slot."
	MsgNoMods          = "No mods installed."
	MsgNoLocations     = "No save locations found."
	MsgFreshBaseline   = "Save directory cleared. Launch the game to create a new save for this slot."
	MsgPreCheckClean   = "All archive entries land in existing directories."
	MsgPreCheckWarning = "These entries target directories that do not exist (possible mis-packaged archive):"
	MsgCopyDeclined    = "Copy cancelled; destination left unchanged."
	MsgBypassOn        = "Launcher bypass is applied."
	MsgBypassOff       = "Launcher bypass is not applied."
	MsgGameRootValid   = "Game root looks valid."
	MsgOverwritePrompt = "Destination already has this slot. Pass --yes to overwrite."
)
