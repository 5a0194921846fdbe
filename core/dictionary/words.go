package dictionary

// defaultWords is the embedded English word list used when no Provider is
// supplied. Words are common, concrete, and easy to spell from memory;
// every length from 4 to 8 has well over the minimum candidate count so the
// shipped presets work out of the box.
var defaultWords = WordList{
	// 4 letters
	"acre", "aqua", "arch", "atom", "barn", "bass", "bath", "bead", "beam", "bean",
	"bear", "bell", "belt", "bird", "blue", "boat", "bolt", "bone", "book", "boot",
	"bush", "cake", "calf", "camp", "cape", "card", "cave", "chef", "city", "clam",
	"clay", "coal", "coat", "code", "coin", "cone", "cook", "cord", "cork", "corn",
	"cove", "crab", "crow", "cube", "dawn", "deer", "desk", "dial", "dish", "dock",
	"door", "dove", "drum", "duck", "dune", "dusk", "dust", "east", "echo", "fact",
	"farm", "fawn", "fern", "fire", "fish", "flag", "flax", "foam", "foot", "fork",
	"fort", "frog", "gale", "game", "gate", "gift", "glen", "glow", "goat", "gold",
	"grid", "hand", "harp", "hawk", "haze", "herb", "hill", "hive", "home", "hook",
	"hope", "horn", "iris", "iron", "jade", "kelp", "king", "kite", "lake", "lamb",
	"lamp", "land", "lark", "lava", "leaf", "lime", "lion", "loaf", "loom", "mast",
	"maze", "mesa", "milk", "mill", "mint", "mist", "moon", "moss", "moth", "nest",
	"newt", "node", "noon", "note", "oath", "opal", "oval", "palm", "park", "path",
	"peak", "pear", "pine", "pond", "pony", "rain", "reef", "rice", "ring", "road",
	"rock", "rope", "rose", "ruby", "sage", "sail", "salt", "sand", "seal", "seed",
	"ship", "silk", "snow", "soap", "sock", "soil", "song", "spot", "star", "swan",
	"tail", "tale", "team", "tent", "tide", "toad", "tool", "town", "tree", "vine",
	"wall", "wave", "wind", "wing", "wolf", "wood", "wool", "wren", "yard", "year",
	// 5 letters
	"amber", "apple", "aspen", "badge", "basil", "beach", "birch", "blaze", "bloom", "brass",
	"bread", "brick", "brook", "cabin", "camel", "candy", "cedar", "chalk", "charm", "chess",
	"cliff", "cloud", "coast", "cobra", "comet", "coral", "crane", "creek", "crown", "daisy",
	"dance", "delta", "drift", "eagle", "earth", "ember", "fable", "feast", "ferry", "field",
	"finch", "flame", "fleet", "flint", "flora", "flour", "flute", "frost", "fruit", "gecko",
	"glade", "gleam", "glide", "globe", "goose", "gorge", "grain", "grape", "grass", "grove",
	"guild", "heart", "heron", "honey", "horse", "house", "ivory", "jewel", "juice", "koala",
	"lemon", "light", "lilac", "llama", "lodge", "lotus", "lunar", "mango", "maple", "marsh",
	"melon", "metal", "month", "moose", "mount", "mouse", "music", "north", "ocean", "olive",
	"onion", "orbit", "otter", "panda", "peach", "pearl", "penny", "piano", "pilot", "plain",
	"plank", "plant", "prism", "quilt", "raven", "ridge", "river", "robin", "scale", "shade",
	"shell", "shore", "slate", "smoke", "snail", "solar", "south", "spark", "spice", "spoon",
	"steam", "steel", "stone", "storm", "straw", "sugar", "swamp", "tiger", "torch", "tower",
	"trail", "train", "tulip", "vapor", "viola", "wagon", "water", "whale", "wheat", "woods",
	"world", "yacht", "zebra",
	// 6 letters
	"acorns", "anchor", "antler", "aurora", "basket", "beacon", "burrow", "branch", "breeze", "bridge",
	"bucket", "butter", "camera", "candle", "canyon", "carpet", "castle", "cellar", "cherry", "circle",
	"clover", "cobalt", "copper", "cotton", "cradle", "desert", "donkey", "dragon", "falcon", "fungus",
	"fiddle", "forest", "galaxy", "garden", "garnet", "geyser", "ginger", "goblet", "grotto", "hammer",
	"harbor", "hollow", "island", "jungle", "kernel", "kettle", "lagoon", "locket", "magnet", "mallet",
	"mantle", "marble", "meadow", "mirror", "monkey", "nectar", "needle", "orchid", "osprey", "oyster",
	"parrot", "pebble", "pepper", "pillow", "planet", "plough", "pocket", "pollen", "poplar", "quartz",
	"rabbit", "raisin", "ribbon", "rocket", "saddle", "salmon", "sequin", "shadow", "shovel", "silver",
	"spruce", "stream", "summit", "sunset", "tassel", "temple", "thread", "timber", "toffee", "trench",
	"tunnel", "turnip", "turtle", "valley", "velvet", "violet", "walnut", "willow", "window", "winter",
	"wizard", "wonder", "zephyr",
	// 7 letters
	"almanac", "apricot", "avocado", "balloon", "bananas", "blanket", "blossom", "boulder", "cabbage", "caravan",
	"cascade", "channel", "chimney", "compass", "coconut", "crystal", "cupcake", "curtain", "dolphin", "drizzle",
	"emerald", "evening", "feather", "fortune", "glacier", "granite", "harvest", "horizon", "journey", "lantern",
	"meadows", "monsoon", "morning", "caramel", "octopus", "orchard", "pasture", "peacock", "pelican", "penguin",
	"pottery", "prairie", "pumpkin", "rainbow", "saffron", "sapling", "sparrow", "thimble", "thunder", "tobacco",
	"treacle", "trinket", "trumpet", "vanilla", "village", "vulture", "whisper",
	// 8 letters
	"aquarium", "albacore", "birdsong", "barnacle", "bluebell", "campfire", "cinnamon", "daffodil", "dewdrops", "dewberry",
	"elephant", "eggplant", "festival", "foxglove", "flamingo", "fountain", "hedgehog", "honeybee", "kangaroo", "lavender",
	"magnolia", "marigold", "midnight", "molasses", "mountain", "mushroom", "porridge", "pressure", "reindeer", "riverbed",
	"seahorse", "seashell", "snowdrop", "squirrel", "starfish", "sunshine", "thistles", "treasure", "tropical", "umbrella",
	"waterway", "woodland",
}

// Default returns the embedded word list provider.
func Default() Provider {
	return defaultWords
}
