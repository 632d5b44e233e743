package namegen

// Built-in first-part vocabulary.
var firstParts = []string{
	"Quantum", "Cyber", "Digital", "Algorithmic", "Vintage", "Retro",
	"Intergalactic", "Colossal", "Epic", "Grunge", "Punk", "Boho",
	"Ghost", "Mirage", "Phantom", "Renaissance", "Luminous", "Vibrant",
	"Radiant", "Neon", "Vapor", "Glitch", "Celestial", "Ethereal",
	"Nebular", "Divine", "Infinite", "Mystic", "Surreal", "Abstract",
	"Analog", "Cosmic", "Velvet", "Midnight", "Pastel", "Lo-Fi",
	"Chrome", "Holographic", "Sunset", "Dreamy", "Damn Fine", "Feral",
	"Solar", "Liminal", "Pixel", "Moonlit",
}

// Built-in second-part vocabulary.
var secondParts = []string{
	"Dragon", "Phoenix", "Oracle", "Wizard", "Punk", "Rebel",
	"Rogue", "Outlaw", "Anarchist", "Skater", "Vagrant", "Arcade",
	"Samurai", "Grunge", "Vapor", "Glitch", "Dank Meme", "Lame Duck",
	"Savage", "Crunch", "Silk", "Spice", "Clown", "Ninja",
	"Dude", "Goof", "Robot", "Guerilla", "Toast", "Waves",
	"Dreams", "Mixtape", "Lagoon", "Cathedral", "Voyager", "Punk Dragon",
	"Rogue Punk Wizard", "Epic Saga", "Colossal Loaf", "Vapor Silk",
	"Glitch Spice", "Arcade Samurai", "Skater Anarchist", "Damn Wizard",
	"Shitposter", "Noodle", "Goblin", "Serenade",
}
