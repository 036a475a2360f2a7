package domain

// PlasticSheet is the technical sheet of a plastic polymer.
type PlasticSheet struct {
	ScientificName     string `json:"scientific_name"`
	CommonName         string `json:"common_name"`
	MolecularStructure string `json:"molecular_structure"`
	Formula            string `json:"formula"`
	Application        string `json:"application"`
	DeteriorationTime  string `json:"deterioration_time"`
}

// FungusSheet is the technical sheet of a fungal isolate.
type FungusSheet struct {
	ScientificName string `json:"scientific_name"`
	Taxonomy       string `json:"taxonomy"`
	Enzyme         string `json:"enzyme"`
	Degradation    string `json:"degradation"`
	Maturation     string `json:"maturation"`
}

// DefaultPlasticSheet is the sheet a new session starts with.
func DefaultPlasticSheet() PlasticSheet {
	return PlasticSheet{
		ScientificName:     "PET (polietileno tereftalato)",
		CommonName:         "PET",
		MolecularStructure: "—(O-CH2-CH2-O-CO-C6H4-CO)-",
		Formula:            "C10H8O4",
		Application:        "Garrafas, embalagens",
		DeteriorationTime:  "≈ 450 anos",
	}
}

// DefaultFungusSheet is the sheet a new session starts with.
func DefaultFungusSheet() FungusSheet {
	return FungusSheet{
		ScientificName: "Ideafungus plasticae",
		Taxonomy:       "Fungi > Basidiomycota",
		Enzyme:         "Plastase-A",
		Degradation:    "Alta",
		Maturation:     "6 semanas",
	}
}
