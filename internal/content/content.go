// Package content holds the fixed data shown by pawprint.
//
// Every table is defined once at process start and never changes. The
// accessors return fresh copies so a caller cannot edit what another
// caller sees.
package content

// Breed is one entry of the breed gallery.
type Breed struct {
	Name  string
	Trait string
}

// Fact is one entry of the fun-facts list.
type Fact struct {
	Fact string
	Icon string
}

// Tip is one entry of the care-tips list.
type Tip struct {
	Tip      string
	Category string
}

var breeds = []Breed{
	{Name: "Labrador Retriever", Trait: "Friendly and Outgoing"},
	{Name: "German Shepherd", Trait: "Loyal and Courageous"},
	{Name: "Golden Retriever", Trait: "Intelligent and Devoted"},
	{Name: "French Bulldog", Trait: "Playful and Adaptable"},
	{Name: "Bulldog", Trait: "Calm and Courageous"},
	{Name: "Poodle", Trait: "Proud and Clever"},
}

var facts = []Fact{
	{Fact: "Dogs have a sense of smell that's up to 100,000 times stronger than humans.", Icon: "🐕"},
	{Fact: "The Basenji is the only breed of dog that can't bark, but they can yodel!", Icon: "🎵"},
	{Fact: "A dog's nose print is unique, much like a human's fingerprint.", Icon: "👃"},
	{Fact: "Greyhounds can reach speeds of up to 45 miles per hour.", Icon: "🏃"},
	{Fact: "The tallest dog ever recorded was a Great Dane named Zeus, who stood at 44 inches tall.", Icon: "📏"},
}

var tips = []Tip{
	{Tip: "Provide a balanced diet appropriate for your dog's age, size, and activity level.", Category: "Nutrition"},
	{Tip: "Ensure your dog gets regular exercise through walks, playtime, and mental stimulation.", Category: "Exercise"},
	{Tip: "Schedule regular check-ups with your veterinarian for vaccinations and health screenings.", Category: "Health"},
	{Tip: "Groom your dog regularly, including brushing their coat and teeth.", Category: "Grooming"},
	{Tip: "Socialize your dog from an early age to help them become well-adjusted adults.", Category: "Training"},
}

// Breeds returns the breed table in display order.
func Breeds() []Breed {
	return append([]Breed(nil), breeds...)
}

// Facts returns the fact table in display order.
func Facts() []Fact {
	return append([]Fact(nil), facts...)
}

// Tips returns the care-tip table in display order.
func Tips() []Tip {
	return append([]Tip(nil), tips...)
}
