package catalog

// SeedSpecialization is one entry of the reference catalog.
type SeedSpecialization struct {
	Name        string
	Description string
	Topics      []string
}

// TopicDescription is the default description given to seeded topics.
func TopicDescription(topic, specialization string) string {
	return topic + " para " + specialization
}

var InitialCatalog = []SeedSpecialization{
	{
		Name:        "Piano",
		Description: "Aulas de piano para todos os níveis",
		Topics: []string{
			"Técnica Básica", "Leitura de Partitura", "Harmonia", "Improvisação",
			"Repertório Clássico", "Repertório Popular", "Teoria Musical", "Composição",
		},
	},
	{
		Name:        "Violão",
		Description: "Aulas de violão acústico e elétrico",
		Topics: []string{
			"Técnica Básica", "Dedilhado", "Harmonia", "Improvisação",
			"Repertório Popular", "Repertório Clássico", "Teoria Musical", "Composição",
		},
	},
	{
		Name:        "Canto",
		Description: "Aulas de canto e técnica vocal",
		Topics: []string{
			"Técnica Vocal", "Respiração", "Afinação", "Interpretação",
			"Repertório Popular", "Repertório Clássico", "Teoria Musical", "Performance",
		},
	},
	{
		Name:        "Teoria Musical",
		Description: "Fundamentos da teoria musical",
		Topics: []string{
			"Notação Musical", "Ritmo e Compasso", "Escalas", "Harmonia Básica",
			"Harmonia Avançada", "Análise Musical", "Composição", "Arranjo",
		},
	},
	{
		Name:        "Bateria",
		Description: "Aulas de bateria e percussão",
		Topics: []string{
			"Técnica Básica", "Rudimentos", "Ritmos Brasileiros", "Rock e Pop",
			"Jazz", "Improvisação", "Teoria Musical", "Performance",
		},
	},
	{
		Name:        "Baixo",
		Description: "Aulas de contrabaixo e baixo elétrico",
		Topics: []string{
			"Técnica Básica", "Harmonia", "Walking Bass", "Slap",
			"Repertório Popular", "Jazz", "Teoria Musical", "Performance",
		},
	},
	{
		Name:        "Saxofone",
		Description: "Aulas de saxofone",
		Topics: []string{
			"Técnica Básica", "Respiração", "Improvisação", "Repertório Jazz",
			"Repertório Popular", "Teoria Musical", "Performance", "Manutenção do Instrumento",
		},
	},
	{
		Name:        "Flauta",
		Description: "Aulas de flauta transversal",
		Topics: []string{
			"Técnica Básica", "Respiração", "Repertório Clássico", "Repertório Popular",
			"Teoria Musical", "Performance", "Manutenção do Instrumento",
		},
	},
}
