// Package namegen produces the default names for new save slots:
// a random adjective-noun pair drawn from the game's vocabulary.
package namegen

import "math/rand"

// Generate returns a random "Adjective Noun" slot name. Names are for
// display only; slot identity is the generated id, so collisions here
// are harmless.
func Generate() string {
	return adjectives[rand.Intn(len(adjectives))] + " " + nouns[rand.Intn(len(nouns))]
}

var adjectives = []string{
	"Adept", "Ancient", "Apprentice", "Arcane", "Artisan", "Brave",
	"Legendary", "Celebrity", "Creator", "Divine", "Elder", "Expert",
	"Fabled", "Famous", "Fledgling", "Forgotten", "God-in-Training",
	"Golden", "Hero", "Illustrious", "Iron", "Leathern", "Magical",
	"Master", "Mythic", "Novice", "Royal", "Sacred", "Silken", "Silvern",
	"Star", "Sturdy", "Whimsical", "Wise", "Wooden", "Blissful",
	"Bubbling", "Buzzy", "Carved", "Cooked", "Courageous", "Curious",
	"Daring", "Dashing", "Floating", "Fluffy", "Forged", "Glimmering",
	"Grassy", "Happy", "Heroic", "Humble", "Jolly", "Joyful", "Lucky",
	"Mysterious", "Nimble", "Oceanic", "Peaceful", "Plushy", "Radiant",
	"Sandy", "Sassy", "Shiny", "Sleepy", "Sparkling", "Spooky",
	"Starlight", "Sunny", "Woven",
}

var nouns = []string{
	"Alchemist", "Angler", "Blacksmith", "Carpenter", "Cook", "Hunter",
	"Magician", "Mercenary", "Miner", "Paladin", "Tailor", "Woodcutter",
	"Artist", "Bandit", "Butterfly", "Divinus", "Explorer", "Farmer",
	"Goddess", "Islander", "King", "Knight", "Laura", "Noelia", "Pam",
	"Queen", "Yuelia", "Behemoth", "Carrot", "Dragon", "Ghost", "Golem",
	"Jell-O", "Mandragora", "Napdragon", "Puffer", "Spirit", "Spiky",
	"Wyvern", "Aquade", "Castele", "Crystal", "Desert", "Dosh", "Farm",
	"Forest", "Island", "Key", "Library", "Meadow", "Mountain", "Past",
	"Present", "Relic", "Reveria", "Rune", "Shrine", "Time", "Volcano",
	"Waterfall", "Workshop", "Axe", "Bow", "Dagger", "Elixir", "Fabric",
	"Fish", "Gem", "Hammer", "Log", "Meal", "Moon", "Ore", "Potion",
	"Scroll", "Staff", "Star", "Sun", "Sword",
}
