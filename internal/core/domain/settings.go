package domain

// CompanySettings is the singleton configuration document edited from the
// admin console. A missing document reads back as the zero value.
type CompanySettings struct {
	CompanyName      string `json:"companyName"`
	Timezone         string `json:"timezone"`
	DefaultWorkHours string `json:"defaultWorkHours"`
}
