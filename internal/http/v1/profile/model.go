package profile

import (
	"github.com/janisto/portfolio-api/internal/platform/timeutil"
	profilesvc "github.com/janisto/portfolio-api/internal/service/profile"
)

// Profile is the profile response body.
type Profile struct {
	Name        string        `json:"name"        doc:"Full name"             example:"Luv Suneja"`
	Title       string        `json:"title"       doc:"Headline"`
	Subtitle    string        `json:"subtitle"    doc:"Secondary headline"`
	Location    string        `json:"location"    doc:"Base location"`
	Email       string        `json:"email"       doc:"Contact email"`
	Phone       string        `json:"phone"       doc:"Contact phone"`
	LinkedIn    string        `json:"linkedin"    doc:"LinkedIn profile URL"`
	Bio         string        `json:"bio"         doc:"Biography"`
	Experience  string        `json:"experience"  doc:"Years of experience"   example:"15+"`
	TeamLed     string        `json:"teamLed"     doc:"Largest team led"      example:"50+"`
	CostSavings string        `json:"costSavings" doc:"Headline cost savings" example:"$10M+"`
	UpdatedAt   timeutil.Time `json:"updatedAt"   doc:"Last update timestamp" example:"2025-07-27T00:00:00.000Z"`
}

func toHTTPProfile(p *profilesvc.Profile) Profile {
	return Profile{
		Name:        p.Name,
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		Location:    p.Location,
		Email:       p.Email,
		Phone:       p.Phone,
		LinkedIn:    p.LinkedIn,
		Bio:         p.Bio,
		Experience:  p.Experience,
		TeamLed:     p.TeamLed,
		CostSavings: p.CostSavings,
		UpdatedAt:   timeutil.NewTime(p.UpdatedAt),
	}
}
