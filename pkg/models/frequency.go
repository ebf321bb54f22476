package models

// Sources names where each frequency set was read from, a local path or an s3:// key
type Sources struct {
	Final    string `json:"final_source" minLength:"1" required:"true" doc:"Final state (surface + adsorbate) frequency file"`
	Isolated string `json:"isolated_source" minLength:"1" required:"true" doc:"Isolated molecule frequency file"`
	Surface  string `json:"surface_source" minLength:"1" required:"true" doc:"Clean surface frequency file"`
}

// ModeCounts records how many frequencies were accepted from each source
type ModeCounts struct {
	Final    int `json:"final"`
	Isolated int `json:"isolated"`
	Surface  int `json:"surface"`
}
