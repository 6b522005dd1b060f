package models

type Region struct {
	ID   int    `json:"id" validate:"required"`
	Name string `json:"name"`
}

type City struct {
	ID   int    `json:"id" validate:"required"`
	Name string `json:"name"`
}

// RegionList - ответ GET /regions/?country={id}
type RegionList struct {
	Regions []Region `json:"regions" validate:"omitempty,dive"`
}

// CityList - ответ GET /cities/?country={id}&region={id}
type CityList struct {
	Cities []City `json:"cities" validate:"omitempty,dive"`
}
