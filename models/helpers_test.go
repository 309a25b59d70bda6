package models

// --- Helpers ---

func testDataset() Dataset {
	return Dataset{
		Users: []User{
			{ID: 1, Name: "Roma", Sex: SexMale},
			{ID: 2, Name: "Anna", Sex: SexFemale},
			{ID: 3, Name: "Max", Sex: SexMale},
		},
		Categories: []Category{
			{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
			{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
			{ID: 3, Title: "Electronics", Icon: "💻", OwnerID: 1},
			{ID: 4, Title: "Clothes", Icon: "👚", OwnerID: 3},
		},
		Products: []Product{
			{ID: 1, Name: "Milk", CategoryID: 2},
			{ID: 2, Name: "Bread", CategoryID: 1},
			{ID: 3, Name: "MacBook", CategoryID: 3},
			{ID: 4, Name: "Jacket", CategoryID: 4},
			{ID: 5, Name: "Macaroni", CategoryID: 1},
			{ID: 6, Name: "Beer", CategoryID: 2},
		},
	}
}

func ids(products []EnrichedProduct) []uint {
	out := make([]uint, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func userID(id uint) *uint {
	return &id
}
