package catalogue_test

import (
	"fmt"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/geo"
)

func ExampleCatalogue_BusStatistics() {
	b := catalogue.NewBuilder()
	b.AddStop("Tolstopaltsevo", geo.Coordinates{Lat: 55.611087, Lng: 37.20829})
	b.AddStop("Marushkino", geo.Coordinates{Lat: 55.595884, Lng: 37.209755})
	b.AddDistance("Tolstopaltsevo", "Marushkino", 3900)
	b.AddBus("750", []string{"Tolstopaltsevo", "Marushkino"}, false)

	cat, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	data, _ := cat.BusStatistics("750")
	fmt.Printf("stops=%d unique=%d length=%d curvature=%.3f\n",
		data.StopCount, data.UniqueStopCount, data.RouteLength, data.Curvature)
	// Output: stops=3 unique=2 length=7800 curvature=2.304
}
