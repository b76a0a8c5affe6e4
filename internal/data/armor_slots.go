package data

import "github.com/udisondev/buildcraft/internal/model"

// ArmorSlot is one of the six armor pieces.
// Scale is the 3-stat major value of the slot; bundles scale by Scale/141 from chest values.
type ArmorSlot struct {
	Name  string
	Scale int32
}

// ArmorSlots in equip order.
var ArmorSlots = [6]ArmorSlot{
	{Name: "Helm", Scale: 63},
	{Name: "Shoulders", Scale: 47},
	{Name: "Chest", Scale: chestMajor3},
	{Name: "Gloves", Scale: 47},
	{Name: "Leggings", Scale: 94},
	{Name: "Boots", Scale: 47},
}

// SlotBundle returns the attributes a prefix grants in a slot.
func SlotBundle(p StatPrefix, slot ArmorSlot) model.StatBundle {
	return p.Bundle.Scale(slot.Scale, chestMajor3)
}
