// Package item provides domain models for the items players hold and mine.
package item

import "strings"

// Material identifies a block or item type. Values follow the upper-case
// underscore convention (e.g. "DIAMOND_PICKAXE"); the set is open so
// configurations may reference any material the host game knows about.
type Material string

// Well-known materials used throughout the default tool categories.
const (
	MaterialAir Material = "AIR"

	MaterialWoodenPickaxe    Material = "WOODEN_PICKAXE"
	MaterialStonePickaxe     Material = "STONE_PICKAXE"
	MaterialIronPickaxe      Material = "IRON_PICKAXE"
	MaterialGoldenPickaxe    Material = "GOLDEN_PICKAXE"
	MaterialDiamondPickaxe   Material = "DIAMOND_PICKAXE"
	MaterialNetheritePickaxe Material = "NETHERITE_PICKAXE"

	MaterialWoodenAxe    Material = "WOODEN_AXE"
	MaterialStoneAxe     Material = "STONE_AXE"
	MaterialIronAxe      Material = "IRON_AXE"
	MaterialGoldenAxe    Material = "GOLDEN_AXE"
	MaterialDiamondAxe   Material = "DIAMOND_AXE"
	MaterialNetheriteAxe Material = "NETHERITE_AXE"

	MaterialWoodenShovel    Material = "WOODEN_SHOVEL"
	MaterialStoneShovel     Material = "STONE_SHOVEL"
	MaterialIronShovel      Material = "IRON_SHOVEL"
	MaterialGoldenShovel    Material = "GOLDEN_SHOVEL"
	MaterialDiamondShovel   Material = "DIAMOND_SHOVEL"
	MaterialNetheriteShovel Material = "NETHERITE_SHOVEL"

	MaterialShears Material = "SHEARS"

	MaterialCoalOre     Material = "COAL_ORE"
	MaterialIronOre     Material = "IRON_ORE"
	MaterialGoldOre     Material = "GOLD_ORE"
	MaterialDiamondOre  Material = "DIAMOND_ORE"
	MaterialEmeraldOre  Material = "EMERALD_ORE"
	MaterialRedstoneOre Material = "REDSTONE_ORE"
	MaterialLapisOre    Material = "LAPIS_ORE"
)

// MaterialOf normalizes a raw string into a Material. Surrounding whitespace
// is trimmed, spaces become underscores and the result is upper-cased, so
// "diamond pickaxe" and "DIAMOND_PICKAXE" name the same material.
func MaterialOf(s string) Material {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	return Material(strings.ToUpper(s))
}

// Stack is a single item instance as held by a player: a material, an amount
// and optional decoration (display name and lore lines).
type Stack struct {
	Material Material
	Amount   int
	Name     string
	Lore     []string
}

// NewStack creates a synthetic, undecorated stack of the given material with
// an amount of one.
func NewStack(material Material) Stack {
	return Stack{Material: material, Amount: 1}
}

// IsEmpty reports whether the stack is effectively absent: the zero Stack,
// air, or a non-positive amount. An empty stack represents the bare hand.
func (s Stack) IsEmpty() bool {
	return s.Material == "" || s.Material == MaterialAir || s.Amount <= 0
}
