package cards

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/youruser/artifactdeck/internal/util"
)

// The card set API is a two-step fetch: the set endpoint returns a CDN
// location plus an expiry, the CDN returns the actual set data.
const setBaseURL = "https://playartifact.com/cardset/"

// DefaultSets are the set numbers fetched when none are given.
var DefaultSets = []string{"00", "01"}

// DefaultLanguage is used for card names and texts when no language is
// configured.
const DefaultLanguage = "english"

// LoadOptions configures LoadCatalog.
type LoadOptions struct {
	// Sets limits which set numbers to fetch; defaults to DefaultSets.
	Sets []string
	// Language for card names and texts; defaults to DefaultLanguage.
	Language string
	// DataDir caches fetched set JSON on disk, honoring the API expiry.
	// Empty disables caching.
	DataDir string
	// Client overrides the HTTP client used for fetches.
	Client *http.Client
}

// LoadCatalog fetches the requested card sets and indexes them.
func LoadCatalog(opt LoadOptions) (*Catalog, error) {
	setNumbers := opt.Sets
	if len(setNumbers) == 0 {
		setNumbers = DefaultSets
	}
	language := strings.ToLower(opt.Language)
	if language == "" {
		language = DefaultLanguage
	}

	catalog := NewCatalog(language)
	for _, number := range setNumbers {
		envelope, err := fetchSetEnvelope(opt.Client, number, opt.DataDir)
		if err != nil {
			return nil, fmt.Errorf("loading card set %s: %w", number, err)
		}
		set, err := ParseCardSet(number, envelope.CardSet, language)
		if err != nil {
			return nil, fmt.Errorf("parsing card set %s: %w", number, err)
		}
		set.ExpireTime = envelope.ExpireTime
		catalog.AddSet(set)
	}
	return catalog, nil
}

type cdnInfo struct {
	CDNRoot    string `json:"cdn_root"`
	URL        string `json:"url"`
	ExpireTime int64  `json:"expire_time"`
}

// setEnvelope is both the CDN response shape and the on-disk cache shape
// (the cache additionally records the expiry from the first request).
type setEnvelope struct {
	ExpireTime int64           `json:"expire_time,omitempty"`
	CardSet    json.RawMessage `json:"card_set"`
}

func cachePath(dataDir, setNumber string) string {
	return filepath.Join(dataDir, "cardset_"+setNumber+".json")
}

func fetchSetEnvelope(client *http.Client, setNumber, dataDir string) (*setEnvelope, error) {
	return fetchSetEnvelopeFrom(client, setBaseURL, setNumber, dataDir)
}

func fetchSetEnvelopeFrom(client *http.Client, baseURL, setNumber, dataDir string) (*setEnvelope, error) {
	if dataDir != "" {
		if envelope := readCachedSet(cachePath(dataDir, setNumber)); envelope != nil {
			return envelope, nil
		}
	}

	infoRaw, err := util.GetBytes(client, baseURL+setNumber)
	if err != nil {
		return nil, err
	}
	var info cdnInfo
	if err := json.Unmarshal(infoRaw, &info); err != nil {
		return nil, fmt.Errorf("set location response: %w", err)
	}

	dataRaw, err := util.GetBytes(client, info.CDNRoot+info.URL)
	if err != nil {
		return nil, err
	}
	var envelope setEnvelope
	if err := json.Unmarshal(dataRaw, &envelope); err != nil {
		return nil, fmt.Errorf("set data response: %w", err)
	}
	envelope.ExpireTime = info.ExpireTime

	if dataDir != "" {
		// best-effort cache write
		if err := util.EnsureDir(dataDir); err == nil {
			if blob, err := json.Marshal(&envelope); err == nil {
				_ = os.WriteFile(cachePath(dataDir, setNumber), blob, 0o644)
			}
		}
	}
	return &envelope, nil
}

// readCachedSet returns a cached envelope if present and not expired.
func readCachedSet(path string) *setEnvelope {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var envelope setEnvelope
	if err := json.Unmarshal(blob, &envelope); err != nil {
		return nil
	}
	if envelope.ExpireTime != 0 && time.Now().Unix() >= envelope.ExpireTime {
		return nil
	}
	return &envelope
}

type localized map[string]string

// pick returns the first present key, so card names can fall back to
// english and image urls to their "default" entry.
func (l localized) pick(keys ...string) string {
	for _, k := range keys {
		if v, ok := l[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

type cardJSON struct {
	CardID      int       `json:"card_id"`
	BaseCardID  int       `json:"base_card_id"`
	CardType    string    `json:"card_type"`
	SubType     string    `json:"sub_type"`
	CardName    localized `json:"card_name"`
	CardText    localized `json:"card_text"`
	MiniImage   localized `json:"mini_image"`
	LargeImage  localized `json:"large_image"`
	IngameImage localized `json:"ingame_image"`
	Illustrator string    `json:"illustrator"`
	Rarity      string    `json:"rarity"`
	ItemDef     int       `json:"item_def"`

	IsBlue  bool `json:"is_blue"`
	IsBlack bool `json:"is_black"`
	IsRed   bool `json:"is_red"`
	IsGreen bool `json:"is_green"`

	Attack    int `json:"attack"`
	Armor     int `json:"armor"`
	HitPoints int `json:"hit_points"`
	ManaCost  int `json:"mana_cost"`
	GoldCost  int `json:"gold_cost"`

	References []Reference `json:"references"`
}

type cardSetJSON struct {
	Version int `json:"version"`
	SetInfo struct {
		SetID       int       `json:"set_id"`
		PackItemDef int       `json:"pack_item_def"`
		Name        localized `json:"name"`
	} `json:"set_info"`
	CardList []cardJSON `json:"card_list"`
}

// notIndexed card types are core game mechanics, not deck material.
var notIndexed = map[string]bool{"Stronghold": true, "Pathing": true}

// ParseCardSet maps raw card set JSON into the typed model.
func ParseCardSet(setNumber string, raw []byte, language string) (*CardSet, error) {
	var data cardSetJSON
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}

	set := &CardSet{
		SetNumber: setNumber,
		Version:   data.Version,
		Info: SetInfo{
			ID:          data.SetInfo.SetID,
			PackItemDef: data.SetInfo.PackItemDef,
			Name:        data.SetInfo.Name.pick(language, DefaultLanguage, "default"),
		},
	}
	for _, cj := range data.CardList {
		if notIndexed[cj.CardType] {
			continue
		}
		set.Cards = append(set.Cards, cj.toCard(language))
	}
	return set, nil
}

func (cj cardJSON) toCard(language string) *Card {
	c := &Card{
		ID:          cj.CardID,
		BaseID:      cj.BaseCardID,
		Type:        cj.CardType,
		SubType:     cj.SubType,
		Name:        cj.CardName.pick(language, DefaultLanguage, "default"),
		Text:        cj.CardText.pick(language),
		MiniImage:   cj.MiniImage.pick("default"),
		LargeImage:  cj.LargeImage.pick(language, "default"),
		IngameImage: cj.IngameImage.pick("default"),
		Illustrator: cj.Illustrator,
		Rarity:      cj.Rarity,
		ItemDef:     cj.ItemDef,
		Attack:      cj.Attack,
		Armor:       cj.Armor,
		HitPoints:   cj.HitPoints,
		ManaCost:    cj.ManaCost,
		GoldCost:    cj.GoldCost,
		References:  cj.References,
	}
	switch {
	case cj.IsBlue:
		c.Color = "blue"
	case cj.IsBlack:
		c.Color = "black"
	case cj.IsRed:
		c.Color = "red"
	case cj.IsGreen:
		c.Color = "green"
	case c.Type == TypeHero || c.IsCastable():
		// colored card types without a color flag; future sets may add
		// colors this library doesn't know about
		c.Color = "unknown"
	}
	return c
}
