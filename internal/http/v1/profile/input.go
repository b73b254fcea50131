package profile

// ProfileGetInput for GET /profile (no body needed)
type ProfileGetInput struct{}

// ProfileUpdateInput for PUT /profile
type ProfileUpdateInput struct {
	Body struct {
		Name        *string `json:"name,omitempty"        doc:"Full name"`
		Title       *string `json:"title,omitempty"       doc:"Headline"`
		Subtitle    *string `json:"subtitle,omitempty"    doc:"Secondary headline"`
		Location    *string `json:"location,omitempty"    doc:"Base location"`
		Email       *string `json:"email,omitempty"       doc:"Contact email"`
		Phone       *string `json:"phone,omitempty"       doc:"Contact phone"`
		LinkedIn    *string `json:"linkedin,omitempty"    doc:"LinkedIn profile URL"`
		Bio         *string `json:"bio,omitempty"         doc:"Biography"`
		Experience  *string `json:"experience,omitempty"  doc:"Years of experience"`
		TeamLed     *string `json:"teamLed,omitempty"     doc:"Largest team led"`
		CostSavings *string `json:"costSavings,omitempty" doc:"Headline cost savings"`
	}
}
