package emotion

// Category is one of the five emotion buckets every diary entry is scored
// against. The declaration order is load-bearing: ties in a distribution
// resolve to the first category in this order.
type Category string

const (
	Happiness Category = "happiness"
	Sadness   Category = "sadness"
	Anger     Category = "anger"
	Anxiety   Category = "anxiety"
	Calm      Category = "calm"
)

// Categories lists every category in tie-break order.
var Categories = []Category{Happiness, Sadness, Anger, Anxiety, Calm}

var displayNames = map[Category]string{
	Happiness: "행복",
	Sadness:   "슬픔",
	Anger:     "분노",
	Anxiety:   "불안",
	Calm:      "평온",
}

// DisplayName returns the Korean label shown to users.
func (c Category) DisplayName() string { return displayNames[c] }

// FromDisplayName maps a Korean label back to its category. The second
// return is false for unknown labels; callers decide their own default.
func FromDisplayName(name string) (Category, bool) {
	for _, c := range Categories {
		if displayNames[c] == name {
			return c, true
		}
	}
	return "", false
}

// Distribution is a percentage breakdown across the five categories.
// Values are kept as independently rounded integers, so the sum may drift
// to 99-101; that matches the upstream scoring behavior and is tolerated
// rather than corrected.
type Distribution struct {
	Happiness int `json:"happiness"`
	Sadness   int `json:"sadness"`
	Anger     int `json:"anger"`
	Anxiety   int `json:"anxiety"`
	Calm      int `json:"calm"`
}

func (d Distribution) Get(c Category) int {
	switch c {
	case Happiness:
		return d.Happiness
	case Sadness:
		return d.Sadness
	case Anger:
		return d.Anger
	case Anxiety:
		return d.Anxiety
	case Calm:
		return d.Calm
	}
	return 0
}

func (d *Distribution) Add(c Category, v int) {
	switch c {
	case Happiness:
		d.Happiness += v
	case Sadness:
		d.Sadness += v
	case Anger:
		d.Anger += v
	case Anxiety:
		d.Anxiety += v
	case Calm:
		d.Calm += v
	}
}

func (d Distribution) Total() int {
	return d.Happiness + d.Sadness + d.Anger + d.Anxiety + d.Calm
}

// Primary returns the category holding the maximum value. Ties go to the
// earlier category in declaration order.
func (d Distribution) Primary() Category {
	primary := Categories[0]
	max := d.Get(primary)
	for _, c := range Categories[1:] {
		if v := d.Get(c); v > max {
			primary, max = c, v
		}
	}
	return primary
}

// Max returns the largest value in the distribution, which doubles as the
// reported emotion intensity.
func (d Distribution) Max() int {
	return d.Get(d.Primary())
}
