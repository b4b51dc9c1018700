package types

import "time"

// FoodTruck is one permitted mobile food facility. Records are produced by the
// store package and treated as read-only by everything downstream.
type FoodTruck struct {
	LocationID              int64     `json:"location_id" example:"1569152"`
	Applicant               string    `json:"applicant" example:"Off the Grid Services, LLC"`
	FacilityType            string    `json:"facility_type" example:"Truck"`
	CNN                     int64     `json:"cnn" example:"8742000"`
	LocationDescription     string    `json:"location_description"`
	Address                 string    `json:"address" example:"1 CALIFORNIA ST"`
	BlockLot                string    `json:"blocklot"`
	Block                   string    `json:"block"`
	Lot                     string    `json:"lot"`
	Permit                  string    `json:"permit" example:"21MFF-00106"`
	Status                  string    `json:"status" example:"APPROVED"`
	FoodItems               string    `json:"food_items" example:"Tacos: Burritos: Quesadillas"`
	X                       float64   `json:"x"`
	Y                       float64   `json:"y"`
	Latitude                float64   `json:"latitude" example:"37.7749"`
	Longitude               float64   `json:"longitude" example:"-122.4194"`
	ScheduleURL             string    `json:"schedule_url"`
	DaysHours               string    `json:"days_hours" example:"Mo-Fr:10AM-3PM"`
	NOISent                 string    `json:"noi_sent"`
	Received                int       `json:"received" example:"20210419"`
	PriorPermit             bool      `json:"prior_permit"`
	Location                string    `json:"location"`
	FirePreventionDistricts int       `json:"fire_prevention_districts"`
	PoliceDistricts         int       `json:"police_districts"`
	SupervisorDistricts     int       `json:"supervisor_districts"`
	ZipCodes                int       `json:"zip_codes"`
	NeighborhoodsOld        int       `json:"neighborhoods_old"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func (f FoodTruck) Coords() Coords {
	return NewCoords(f.Latitude, f.Longitude)
}

func (f FoodTruck) String() string {
	return f.Applicant + " (" + f.Address + ")"
}
