package nearby

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rootsec1/meals-on-heels/internal/types"
)

// ToFeatureCollection renders search results as GeoJSON points, preserving
// their order. GeoJSON positions are [longitude, latitude].
func ToFeatureCollection(results []types.SearchResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, r := range results {
		f := geojson.NewFeature(orb.Point{r.Longitude, r.Latitude})
		f.ID = r.LocationID
		f.Properties["location_id"] = r.LocationID
		f.Properties["applicant"] = r.Applicant
		f.Properties["facility_type"] = r.FacilityType
		f.Properties["address"] = r.Address
		f.Properties["status"] = r.Status
		f.Properties["food_items"] = r.FoodItems
		f.Properties["days_hours"] = r.DaysHours
		f.Properties["schedule_url"] = r.ScheduleURL
		f.Properties["permit"] = r.Permit
		f.Properties["distance"] = r.DistanceKm

		fc.Append(f)
	}

	return fc
}
