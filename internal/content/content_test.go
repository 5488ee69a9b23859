package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCardinality(t *testing.T) {
	assert.Len(t, Breeds(), 6)
	assert.Len(t, Facts(), 5)
	assert.Len(t, Tips(), 5)
}

func TestBreedNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, b := range Breeds() {
		require.NotEmpty(t, b.Name)
		assert.False(t, seen[b.Name], "duplicate breed %q", b.Name)
		seen[b.Name] = true
	}
}

func TestTablesAreCopies(t *testing.T) {
	b := Breeds()
	b[0].Name = "Mutt"
	assert.Equal(t, "Labrador Retriever", Breeds()[0].Name)

	tp := Tips()
	tp[2].Category = "Other"
	assert.Equal(t, "Health", Tips()[2].Category)
}

func TestFirstEntries(t *testing.T) {
	assert.Equal(t, Breed{Name: "Labrador Retriever", Trait: "Friendly and Outgoing"}, Breeds()[0])
	assert.Equal(t, "🐕", Facts()[0].Icon)
	assert.Equal(t, "Dogs have a sense of smell that's up to 100,000 times stronger than humans.", Facts()[0].Fact)
	assert.Equal(t, "Schedule regular check-ups with your veterinarian for vaccinations and health screenings.", Tips()[2].Tip)
}

func TestPanelRoundTrip(t *testing.T) {
	for _, p := range Panels() {
		got, ok := ParsePanel(p.String())
		require.True(t, ok, p.String())
		assert.Equal(t, p, got)
		assert.NotEmpty(t, p.Label())
	}

	_, ok := ParsePanel("settings")
	assert.False(t, ok)
	assert.False(t, Panel(7).Valid())
	assert.Equal(t, "panel(7)", Panel(7).String())
}
