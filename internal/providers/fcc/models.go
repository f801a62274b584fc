package fcc

type BlockAPIResponse struct {
	County struct {
		FIPS string `json:"FIPS"`
		Name string `json:"name"`
	} `json:"County"`
	State struct {
		FIPS string `json:"FIPS"`
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"State"`
	Status string `json:"status"`
}
