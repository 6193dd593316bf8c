package configs

// Store holds the locations of the three dataset documents and the optional
// read-through cache switch. Paths are relative to the working directory
// unless absolute. The cache is off by default so that external edits to the
// files stay visible on the very next request; when enabled, a parsed
// document is reused until the file's modification time changes.
type Store struct {
	// CampaignsPath locates the campaigns document.
	CampaignsPath string `env:"CAMPAIGNS_PATH" envDefault:"data/campaigns.json" validate:"required"`
	// UsersPath locates the plaintext-credential user collection.
	UsersPath string `env:"USERS_PATH" envDefault:"data/users.json" validate:"required"`
	// EncryptedUsersPath locates the obfuscated-credential user collection.
	EncryptedUsersPath string `env:"ENCRYPTED_USERS_PATH" envDefault:"data/encrypted_users.json" validate:"required"`
	// Cache enables mtime-invalidated reuse of parsed documents.
	Cache bool `env:"CACHE" envDefault:"false"`
}
