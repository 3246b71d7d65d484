package settings

// Setting is a single key/value entry for app-level state that is not
// inventory data, e.g. the PIN hash.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"-"`
}

const PinHashKey = "pin_hash"
