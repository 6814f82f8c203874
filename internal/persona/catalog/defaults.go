package catalog

// Built-in option sets. Option order is part of the catalog identity:
// summaries and deterministic sampling both iterate in this order.
var defaultOptions = map[Category][]string{
	Activities: {
		"mining", "exploring", "building", "fighting", "farming",
		"trading", "crafting", "fishing", "hunting", "socializing",
	},
	Biomes: {
		"forest", "desert", "mountains", "plains", "ocean",
		"swamp", "jungle", "tundra", "caves", "mushroom_fields",
	},
	Items: {
		"diamond", "iron", "gold", "redstone", "wood",
		"stone", "food", "tools", "weapons", "armor",
	},
	Behaviors: {
		"aggressive", "cautious", "curious", "friendly", "greedy",
		"generous", "loyal", "independent", "playful", "serious",
	},
	Social: {
		"leader", "follower", "loner", "team_player", "mentor",
		"student", "rival", "ally", "protector", "diplomat",
	},
}
