package models

import "time"

// ProjectImage is one entry of a project's ordered image list.
type ProjectImage struct {
	URL       string `json:"url"`
	Alt       string `json:"alt,omitempty"`
	IsPrimary bool   `json:"is_primary"`
	Position  int    `json:"position"`
}

// Project is a portfolio entry.
type Project struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Images      []ProjectImage `json:"images"`
	Area        string         `json:"area,omitempty"`
	BudgetRange string         `json:"budget_range,omitempty"`
	Duration    string         `json:"duration,omitempty"`
	Location    string         `json:"location,omitempty"`
	Published   bool           `json:"published"`
	Featured    bool           `json:"featured"`
	ViewCount   int64          `json:"view_count"`
	LikeCount   int64          `json:"like_count"`
	Sequence    int            `json:"sequence"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// PrimaryImage returns the image marked primary, falling back to the first.
func (p Project) PrimaryImage() (ProjectImage, bool) {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img, true
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0], true
	}
	return ProjectImage{}, false
}

// NormalizeImages guarantees exactly one primary image: if none is marked,
// the first becomes primary; if several are, only the first marked survives.
func (p *Project) NormalizeImages() {
	if len(p.Images) == 0 {
		return
	}
	seen := false
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			if seen {
				p.Images[i].IsPrimary = false
			}
			seen = true
		}
		p.Images[i].Position = i
	}
	if !seen {
		p.Images[0].IsPrimary = true
	}
}

// PortfolioEntry is the denormalized public view written to portfolio.json.
type PortfolioEntry struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Location string `json:"location,omitempty"`
	Featured bool   `json:"featured"`
	Sequence int    `json:"sequence"`
}

// PortfolioView projects the public-facing subset of a project.
func (p Project) PortfolioView() PortfolioEntry {
	entry := PortfolioEntry{
		ID:       p.ID,
		Title:    p.Title,
		Category: p.Category,
		Location: p.Location,
		Featured: p.Featured,
		Sequence: p.Sequence,
	}
	if img, ok := p.PrimaryImage(); ok {
		entry.Image = img.URL
	}
	return entry
}
