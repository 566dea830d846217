package entity

// PlatinadorTip is a short trophy-hunting tip from the "Canto do Platinador".
type PlatinadorTip struct {
	Post
	Category        string      `json:"category,omitempty"`
	HelpfulCount    int         `json:"helpful_count"`
	PlatinadorMedia []NewsMedia `json:"platinadorMedia"`
}

func (t *PlatinadorTip) Kind() PostType { return PostTypePlatinador }
