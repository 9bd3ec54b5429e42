package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testSections = []Section{
	{ID: "home", Label: "Home"},
	{ID: "about", Label: "About"},
	{ID: "experience", Label: "Experience"},
	{ID: "projects", Label: "Projects"},
	{ID: "skills", Label: "Skills"},
	{ID: "contact", Label: "Contact"},
}

var testOffsets = []Offset{
	{ID: "home", Top: 400},
	{ID: "about", Top: 1200},
	{ID: "experience", Top: 2000},
	{ID: "projects", Top: 2800},
	{ID: "skills", Top: 3600},
	{ID: "contact", Top: 4400},
}

func TestActiveIDAboveFirstSectionFallsBackToFirst(t *testing.T) {
	for _, y := range []float64{0, 100, 299.5} {
		require.Equal(t, "home", ActiveID(testSections, testOffsets, y, 100), "scrollY=%v", y)
	}
}

func TestActiveIDPicksLastQualifyingSection(t *testing.T) {
	cases := []struct {
		scrollY float64
		want    string
	}{
		{300, "home"},
		{1099, "home"},
		{1100, "about"},
		{1950, "experience"},
		{2750, "projects"},
		{4300, "contact"},
		{100000, "contact"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ActiveID(testSections, testOffsets, tc.scrollY, 100), "scrollY=%v", tc.scrollY)
	}
}

func TestActiveIDMatchesLinearScanForAllOffsets(t *testing.T) {
	for y := float64(0); y < 5000; y += 37 {
		want := testSections[0].ID
		for _, o := range testOffsets {
			if o.Top <= y+100 {
				want = o.ID
			}
		}
		require.Equal(t, want, ActiveID(testSections, testOffsets, y, 100), "scrollY=%v", y)
	}
}

func TestActiveIDSkipsUnmountedSections(t *testing.T) {
	offsets := []Offset{{ID: "home", Top: 0}, {ID: "contact", Top: 900}}
	require.Equal(t, "home", ActiveID(testSections, offsets, 500, 100))
	require.Equal(t, "contact", ActiveID(testSections, offsets, 800, 100))
}

func TestActiveIDEmpty(t *testing.T) {
	require.Equal(t, "", ActiveID(nil, testOffsets, 0, 100))
}

func TestItemsMarksExactlyOneActive(t *testing.T) {
	items := Items(testSections, "projects")
	require.Len(t, items, len(testSections))
	active := 0
	for _, it := range items {
		require.Equal(t, "#"+it.ID, it.Href)
		if it.Active {
			active++
			require.Equal(t, "projects", it.ID)
		}
	}
	require.Equal(t, 1, active)
}
