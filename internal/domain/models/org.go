package models

// Branch is a physical branch of the institution.
type Branch struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	DistrictID int64  `json:"districtId"`
	Active     bool   `json:"active"`
}

func (b Branch) EntityID() int64 { return b.ID }

type District struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	CityID int64  `json:"cityId"`
}

func (d District) EntityID() int64 { return d.ID }

type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c City) EntityID() int64 { return c.ID }
