package template

import "context"

// Seed installs the default demo templates. IDs are stable so the frontend
// can link to them directly.
func Seed(ctx context.Context, store Store) error {
	defaults := []*Template{
		{
			ID:              "cyber",
			Name:            "Advanced Cybersecurity Platform",
			Title:           "Advanced Cybersecurity Platform",
			Objective:       "Develop and implement a comprehensive cybersecurity platform capable of real-time threat detection, automated incident response, and continuous security monitoring for critical DoD networks. The solution must integrate with existing security infrastructure and provide scalable protection against emerging cyber threats.",
			AcquisitionType: "far",
			SecurityLevel:   "secret",
			ContractValue:   "major",
			Compliance:      []string{"nist800171", "cmmc", "fisma", "dfars"},
		},
		{
			ID:              "medical",
			Name:            "Medical Device Development Platform",
			Title:           "Medical Device Development Platform",
			Objective:       "Design and develop innovative medical devices for military healthcare applications, including portable diagnostic equipment, telemedicine solutions, and battlefield medical support systems. The platform must meet FDA regulatory requirements and military specifications.",
			AcquisitionType: "ota",
			SecurityLevel:   "cui",
			ContractValue:   "simplified",
			Compliance:      []string{"nist800171", "fisma"},
		},
		{
			ID:              "aerospace",
			Name:            "Next-Generation Aerospace System",
			Title:           "Next-Generation Aerospace System",
			Objective:       "Research, develop, and prototype advanced aerospace technologies including propulsion systems, avionics, and flight control systems. The solution must demonstrate improved performance, reliability, and maintainability over existing systems.",
			AcquisitionType: "ota",
			SecurityLevel:   "secret",
			ContractValue:   "major",
			Compliance:      []string{"nist800171", "cmmc", "fisma", "dfars"},
		},
		{
			ID:              "research",
			Name:            "Advanced Research and Development Initiative",
			Title:           "Advanced Research and Development Initiative",
			Objective:       "Conduct cutting-edge research in emerging technologies with potential military applications. Focus areas include artificial intelligence, quantum computing, advanced materials, and biotechnology. Deliverables include research reports, prototypes, and technology demonstrations.",
			AcquisitionType: "sbir",
			SecurityLevel:   "cui",
			ContractValue:   "small",
			Compliance:      []string{"nist800171", "fisma"},
		},
	}

	for _, tpl := range defaults {
		if err := store.Save(ctx, tpl); err != nil {
			return err
		}
	}
	return nil
}
