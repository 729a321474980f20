package models

import "fmt"

// LotStatus is the inventory status of a lot
type LotStatus string

const (
	LotAvailable LotStatus = "available"
	LotReserved  LotStatus = "reserved"
	LotOccupied  LotStatus = "occupied"
)

// DisplayCategory maps a status onto the two categories the console shows
func (s LotStatus) DisplayCategory() string {
	if s == LotAvailable {
		return "Available"
	}
	return "Sold"
}

// VaultConfig is one of the fixed body/bone slot layouts
type VaultConfig string

const (
	VaultSingle     VaultConfig = "single"
	VaultSingleBone VaultConfig = "single_bone"
	VaultDouble     VaultConfig = "double"
)

// VaultLayout is the slot count of a vault configuration
type VaultLayout struct {
	BodySlots int `json:"body_slots"`
	BoneSlots int `json:"bone_slots"`
}

var vaultLayouts = map[VaultConfig]VaultLayout{
	VaultSingle:     {BodySlots: 1, BoneSlots: 0},
	VaultSingleBone: {BodySlots: 1, BoneSlots: 2},
	VaultDouble:     {BodySlots: 2, BoneSlots: 2},
}

// Layout returns the slot layout and whether the configuration is known
func (v VaultConfig) Layout() (VaultLayout, bool) {
	l, ok := vaultLayouts[v]
	return l, ok
}

// Summary renders the vault configuration for ownership listings
func (v VaultConfig) Summary() string {
	l, ok := v.Layout()
	if !ok {
		return "No vault"
	}
	return fmt.Sprintf("%d body / %d bone", l.BodySlots, l.BoneSlots)
}

// Lot is a single cemetery lot
type Lot struct {
	ID            uint        `json:"id" example:"301"`
	Garden        string      `json:"garden" example:"Garden of Peace"`
	Sector        string      `json:"sector" example:"B"`
	SectorID      uint        `json:"sector_id" example:"4"`
	BlockNumber   string      `json:"block_number" example:"12"`
	LotNumber     string      `json:"lot_number" example:"7"`
	LotType       string      `json:"lot_type" example:"lawn"`
	Status        LotStatus   `json:"status" example:"reserved"`
	Vault         VaultConfig `json:"vault_config,omitempty" example:"single_bone"`
	InterredCount int         `json:"interred_count" example:"0"`
	CustomerID    *uint       `json:"customer_id,omitempty"`
	Price         float64     `json:"price,omitempty" example:"250000"`
}

// Label renders the human-readable lot label
func (l Lot) Label() string {
	return fmt.Sprintf("%s, Sector %s, Block %s, Lot %s", l.Garden, l.Sector, l.BlockNumber, l.LotNumber)
}

// VaultLocked reports whether the vault configuration can no longer change
func (l Lot) VaultLocked() bool {
	return l.InterredCount > 0
}

// LotFilter narrows a lot search on the remote API
type LotFilter struct {
	Garden string `form:"garden"`
	Sector string `form:"sector"`
	Block  string `form:"block"`
	Status string `form:"status"`
}

// Ownership links a lot to a customer
type Ownership struct {
	ID           uint        `json:"id"`
	LotID        uint        `json:"lot_id"`
	CustomerID   uint        `json:"customer_id"`
	CustomerName string      `json:"customer_name"`
	LotLabel     string      `json:"lot_label"`
	Vault        VaultConfig `json:"vault_config,omitempty"`
	VaultSummary string      `json:"vault_summary"`
}
