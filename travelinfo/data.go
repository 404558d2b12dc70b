package travelinfo

// Default returns the built-in guide. The data is simulated, not fetched
// from anywhere; keys are lower-case and listed in the order approximate
// matching should try them.
func Default() *Guide {
	return New(map[string][]Entry{
		"london": {
			{Key: "power outlets", Fact: "Type G (three rectangular pins). Standard voltage 230V, frequency 50Hz."},
			{Key: "culture", Fact: "A culture of politeness, orderly queues, afternoon tea, and pub culture. Greet with 'excuse me' or 'sorry' when interacting. Respect personal space."},
			{Key: "transportation", Fact: "Extensive public transportation (Tube, bus). Oyster card or contactless payment is recommended. Iconic black cabs."},
		},
		"tokyo": {
			{Key: "power outlets", Fact: "Types A and B (two or three flat pins). Standard voltage 100V, frequency 50Hz or 60Hz (depending on the region)."},
			{Key: "culture", Fact: "Highly values politeness, order, and cleanliness. Do not tip. Remove shoes in homes and some restaurants. Respect queues."},
			{Key: "transportation", Fact: "Highly efficient train and metro system. The Japan Rail Pass can be cost-effective. Be mindful of rush hour."},
		},
		"new york": {
			{Key: "power outlets", Fact: "Types A and B (two or three flat pins). Standard voltage 120V, frequency 60Hz."},
			{Key: "culture", Fact: "Fast-paced, diverse, and direct. Don't hesitate to speak up. Tipping is common in restaurants and services. Rich theater and art scene."},
			{Key: "transportation", Fact: "24-hour metro (subway) system. Yellow cabs. Walking is a popular way to explore."},
		},
		"paris": {
			{Key: "power outlets", Fact: "Type E (two round pins with a grounding hole). Standard voltage 230V, frequency 50Hz."},
			{Key: "culture", Fact: "Values art, fashion, and cuisine. Greet with 'Bonjour' or 'Bonsoir'. Enjoy coffee at cafes and picnics in parks. Elegance is appreciated."},
			{Key: "transportation", Fact: "The Metro is very efficient. T+ tickets for bus, metro, and tram. Walking is the best way to see the sights."},
		},
		"surabaya": {
			{Key: "power outlets", Fact: "Types C and F (two round pins). Standard voltage 230V, frequency 50Hz."},
			{Key: "culture", Fact: "Surabayans are known to be friendly and direct. Local culinary delights (rujak cingur, lontong balap). Uses Indonesian and Javanese languages."},
			{Key: "transportation", Fact: "Public transport like the Suroboyo Bus. Taxis and online ride-hailing are very popular. Traffic can be dense."},
		},
		"ponorogo": {
			{Key: "power outlets", Fact: "Types C and F (two round pins). Standard voltage 230V, frequency 50Hz."},
			{Key: "culture", Fact: "Ponorogo dikenal sebagai kota Reog. Local culinary delights (nasi pecel, dawet jabung. Uses Indonesian and Javanese languages."},
			{Key: "transportation", Fact: "Public transport like the Suroboyo Bus. Taxis and online ride-hailing are very popular. Traffic can be dense."},
		},
	})
}
