package memory

import "github.com/aretw0/gridwalk/pkg/domain"

// Samples returns the built-in fixtures: the three demo grids
// followed by the single-cell and punctuation cases, each with its expected output.
func Samples() []domain.Fixture {
	return []domain.Fixture{
		{
			Name: "loop-v1",
			Grid: domain.MustGrid([][]string{
				{"HI", "1", "2", "3", "v4"},
				{">9", "10", "11", "v12", "13"},
				{"^14", "15", "16", "17", "<18"},
			}),
			Expect: "HI, 1, 2, 3, 4, 13, 18, 17, 16, 15, 14, 9, 10, 11, 12, LOOP",
		},
		{
			Name: "loop-v2",
			Grid: domain.MustGrid([][]string{
				{"HI", "1", "v2", ">3", "v4"},
				{"v9", "<10", ">11", "^12", "13"},
				{">14", "^15", "16", "17", "<18"},
			}),
			Expect: "HI, 1, 2, 11, 12, 3, 4, 13, 18, 17, 16, 15, 10, 9, 14, LOOP",
		},
		{
			Name: "exit-at-4",
			Grid: domain.MustGrid([][]string{
				{"HI", "1", "v2", ">3", "4"},
				{"v9", "<10", ">11", "^12", "13"},
				{"14", "^15", "16", "17", "<18"},
			}),
			Expect: "HI, 1, 2, 11, 12, 3, 4",
		},
		{
			Name:   "single",
			Grid:   domain.MustGrid([][]string{{"HI"}}),
			Expect: "HI",
		},
		{
			Name: "arbitrary",
			Grid: domain.MustGrid([][]string{
				{"HI", "$", "vv%", ">3", "4"},
				{"v9", "<10", ">#$T", "&*JJ", "t"},
				{"14", "^15", "16", "17", "<18"},
			}),
			Expect: "HI, $, v%, #$T, &*JJ, t",
		},
	}
}

// SampleNames lists Samples in their declared order (the demo order).
func SampleNames() []string {
	samples := Samples()
	names := make([]string, len(samples))
	for i, fx := range samples {
		names[i] = fx.Name
	}
	return names
}

// NewSampleLoader returns a loader holding Samples.
func NewSampleLoader() *Loader {
	l, err := NewFromFixtures(Samples()...)
	if err != nil {
		panic(err)
	}
	return l
}
