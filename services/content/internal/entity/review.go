package entity

type TrophyRating string

const (
	RatingBronze   TrophyRating = "bronze"
	RatingSilver   TrophyRating = "silver"
	RatingGold     TrophyRating = "gold"
	RatingPlatinum TrophyRating = "platinum"
)

type TrophyInfo struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

var trophyInfo = map[TrophyRating]TrophyInfo{
	RatingBronze:   {Label: "Bronze", Description: "Jogo fraco"},
	RatingSilver:   {Label: "Prata", Description: "Mediano"},
	RatingGold:     {Label: "Ouro", Description: "Muito bom"},
	RatingPlatinum: {Label: "Platina", Description: "Obra-prima"},
}

// Rank orders the tiers bronze < silver < gold < platinum. Unknown ratings rank 0.
func (r TrophyRating) Rank() int {
	switch r {
	case RatingBronze:
		return 1
	case RatingSilver:
		return 2
	case RatingGold:
		return 3
	case RatingPlatinum:
		return 4
	default:
		return 0
	}
}

func (r TrophyRating) Valid() bool {
	return r.Rank() > 0
}

func (r TrophyRating) Info() TrophyInfo {
	return trophyInfo[r]
}

type PlatinaGuide struct {
	Difficulty       int    `json:"difficulty"`
	TimeToPlat       string `json:"timeToPlat"`
	MissableTrophies bool   `json:"missableTrophies"`
	OnlineRequired   bool   `json:"onlineRequired"`
	Tips             string `json:"tips"`
}

type AdditionalImage struct {
	ID           string `json:"id,omitempty"`
	URL          string `json:"url"`
	Caption      string `json:"caption"`
	DisplayOrder int    `json:"display_order"`
}

type Review struct {
	Post
	Rating           TrophyRating      `json:"rating"`
	GameName         string            `json:"gameName"`
	Genres           []string          `json:"genres"`
	Tags             []string          `json:"tags"`
	PlatinaGuide     *PlatinaGuide     `json:"platinaGuide,omitempty"`
	AdditionalImages []AdditionalImage `json:"additionalImages"`
}

func (r *Review) Kind() PostType { return PostTypeReview }
