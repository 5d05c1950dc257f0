package clinic

// Fixed clinic roster. Professionals and patients are read-only reference
// data: the scheduling operations never create or modify them.

func SeedProfessionals() []Professional {
	return []Professional{
		{
			ID:            1,
			Name:          "Dr. Carlos Silva",
			Specialty:     "Orthodontics",
			LicenseNumber: "12345",
			Email:         "carlos.silva@clinic.com",
			Phone:         "(11) 99999-1111",
			WorkingHours:  WorkingHours{Start: "09:00", End: "18:00"},
		},
		{
			ID:            2,
			Name:          "Dra. Ana Paula Santos",
			Specialty:     "Endodontics",
			LicenseNumber: "12346",
			Email:         "ana.santos@clinic.com",
			Phone:         "(11) 99999-2222",
			WorkingHours:  WorkingHours{Start: "09:00", End: "18:00"},
		},
		{
			ID:            3,
			Name:          "Dr. Roberto Oliveira",
			Specialty:     "Periodontics",
			LicenseNumber: "12347",
			Email:         "roberto.oliveira@clinic.com",
			Phone:         "(11) 99999-3333",
			WorkingHours:  WorkingHours{Start: "09:00", End: "18:00"},
		},
		{
			ID:            4,
			Name:          "Dra. Mariana Costa",
			Specialty:     "Implantology",
			LicenseNumber: "12348",
			Email:         "mariana.costa@clinic.com",
			Phone:         "(11) 99999-4444",
			WorkingHours:  WorkingHours{Start: "09:00", End: "18:00"},
		},
	}
}

func SeedPatients() []Patient {
	return []Patient{
		{
			ID:         1,
			Name:       "João Pedro Almeida",
			NationalID: "123.456.789-00",
			BirthDate:  "1985-03-15",
			Email:      "joao.almeida@email.com",
			Phone:      "(11) 88888-1111",
			Address:    "Rua das Flores, 123 - São Paulo/SP",
		},
		{
			ID:         2,
			Name:       "Maria Fernanda Lima",
			NationalID: "987.654.321-00",
			BirthDate:  "1992-07-22",
			Email:      "maria.lima@email.com",
			Phone:      "(11) 88888-2222",
			Address:    "Av. Paulista, 456 - São Paulo/SP",
		},
		{
			ID:         3,
			Name:       "Pedro Henrique Santos",
			NationalID: "456.789.123-00",
			BirthDate:  "1978-11-08",
			Email:      "pedro.santos@email.com",
			Phone:      "(11) 88888-3333",
			Address:    "Rua Augusta, 789 - São Paulo/SP",
		},
		{
			ID:         4,
			Name:       "Carolina Silva",
			NationalID: "789.123.456-00",
			BirthDate:  "1990-05-12",
			Email:      "carolina.silva@email.com",
			Phone:      "(11) 88888-4444",
			Address:    "Rua Oscar Freire, 321 - São Paulo/SP",
		},
	}
}

// BlockTypes lists the block-type labels the clinic uses. Informational
// only: blockSlot accepts any non-empty label.
func BlockTypes() []string {
	return []string{"Holiday", "Vacation", "Lunch", "Unavailable"}
}
