package catalog

// Fixed storefront assortment. Subscription prices are the discounted
// per-delivery prices used by the cart and checkout totals.
var products = []Product{
	{ID: 1, Name: "Bio brambory", Category: CategoryPotatoes, Price: 45, PriceSubscription: 39, Unit: "1 kg", Rating: 4.8, FarmID: "farma-kopecek", IsVegan: true},
	{ID: 2, Name: "Bio mrkev", Category: CategoryVegetables, Price: 38, PriceSubscription: 32, Unit: "1 kg", Rating: 4.7, FarmID: "bio-zelenina-uhrineves", IsVegan: true},
	{ID: 3, Name: "Bio rajčata", Category: CategoryVegetables, Price: 89, PriceSubscription: 75, Unit: "500 g", Rating: 4.9, FarmID: "bio-zelenina-uhrineves", IsVegan: true, IsNew: true},
	{ID: 4, Name: "Bio jablka", Category: CategoryFruits, Price: 55, PriceSubscription: 47, Unit: "1 kg", Rating: 4.6, FarmID: "bio-zelenina-uhrineves", IsVegan: true},
	{ID: 5, Name: "Bio jahody", Category: CategoryBerries, Price: 129, PriceSubscription: 109, Unit: "250 g", Rating: 5.0, FarmID: "farma-kopecek", IsVegan: true, IsNew: true},
	{ID: 6, Name: "Bio borůvky", Category: CategoryBerries, Price: 149, PriceSubscription: 127, Unit: "125 g", Rating: 4.9, FarmID: "farma-kopecek", IsVegan: true},
	{ID: 7, Name: "Bio bazalka", Category: CategoryHerbs, Price: 35, PriceSubscription: 29, Unit: "svazek", Rating: 4.5, FarmID: "farma-kopecek", IsVegan: true},
	{ID: 8, Name: "Bio petržel", Category: CategoryHerbs, Price: 29, PriceSubscription: 25, Unit: "svazek", Rating: 4.4, FarmID: "bio-zelenina-uhrineves", IsVegan: true},
	{ID: 9, Name: "Domácí vejce", Category: CategoryEggs, Price: 79, PriceSubscription: 69, Unit: "10 ks", Rating: 4.9, FarmID: "hoki-farma"},
	{ID: 10, Name: "Kuřecí maso", Category: CategoryMeat, Price: 189, PriceSubscription: 165, Unit: "1 kg", Rating: 4.8, FarmID: "hoki-farma"},
	{ID: 11, Name: "Bio červená řepa", Category: CategoryVegetables, Price: 42, PriceSubscription: 36, Unit: "1 kg", Rating: 4.3, FarmID: "farma-kopecek", IsVegan: true, IsNew: true},
	{ID: 12, Name: "Bio česnek", Category: CategoryVegetables, Price: 95, PriceSubscription: 82, Unit: "250 g", Rating: 4.7, FarmID: "bio-zelenina-uhrineves", IsVegan: true},
}

var farms = []Farm{
	{
		ID:            "hoki-farma",
		Name:          "HOKI FARMA",
		Location:      "Jižní Čechy",
		Rating:        4.9,
		Reviews:       156,
		Description:   "Organická vejce a kuřecí maso, slepice ve volném výběhu.",
		ProductsCount: 4,
		Followers:     1250,
		Established:   "2015",
		Email:         "info@hokifarma.cz",
		Phone:         "+420 123 456 789",
		Website:       "www.hokifarma.cz",
	},
	{
		ID:            "bio-zelenina-uhrineves",
		Name:          "BIO zelenina Uhříněves",
		Location:      "Morava",
		Rating:        5.0,
		Reviews:       203,
		Description:   "Přes 20 let BIO zeleniny a ovoce bez pesticidů a umělých hnojiv.",
		ProductsCount: 12,
		Followers:     2100,
		Established:   "2003",
		Email:         "kontakt@biouhrineves.cz",
		Phone:         "+420 234 567 890",
		Website:       "www.biouhrineves.cz",
	},
	{
		ID:            "farma-kopecek",
		Name:          "Farma Kopeček",
		Location:      "Polabí",
		Rating:        4.8,
		Reviews:       178,
		Description:   "Síť rodinných farem v Olomouckém kraji, čerstvá zelenina a bylinky.",
		ProductsCount: 8,
		Followers:     1800,
		Established:   "2010",
		Email:         "info@farmakopecek.cz",
		Phone:         "+420 345 678 901",
		Website:       "www.farmakopecek.cz",
	},
}
