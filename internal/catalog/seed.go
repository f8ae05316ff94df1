package catalog

import "github.com/shopspring/decimal"

// DefaultSeed returns the shop's starting inventory with stable ids "1" to "8".
func DefaultSeed() []Item {
	return []Item{
		{ID: "1", Name: "Chocolate Truffle", Category: CategoryChocolates, Price: decimal.NewFromInt(299), Quantity: 50,
			Description: "Rich dark chocolate truffle with a creamy ganache center"},
		{ID: "2", Name: "Strawberry Macaron", Category: CategoryMacarons, Price: decimal.NewFromInt(199), Quantity: 30,
			Description: "Delicate French macaron with fresh strawberry filling"},
		{ID: "3", Name: "Vanilla Cupcake", Category: CategoryCupcakes, Price: decimal.NewFromInt(399), Quantity: 25,
			Description: "Fluffy vanilla cupcake topped with buttercream frosting"},
		{ID: "4", Name: "Rainbow Lollipop", Category: CategoryCandies, Price: decimal.NewFromInt(149), Quantity: 100,
			Description: "Colorful swirl lollipop with mixed fruit flavors"},
		{ID: "5", Name: "Caramel Fudge", Category: CategoryFudge, Price: decimal.NewFromInt(449), Quantity: 40,
			Description: "Smooth buttery caramel fudge that melts in your mouth"},
		{ID: "6", Name: "Mint Chocolate", Category: CategoryChocolates, Price: decimal.NewFromInt(279), Quantity: 45,
			Description: "Refreshing mint chocolate squares with a cooling sensation"},
		{ID: "7", Name: "Pistachio Macaron", Category: CategoryMacarons, Price: decimal.NewFromInt(249), Quantity: 20,
			Description: "Classic pistachio macaron with almond notes"},
		{ID: "8", Name: "Red Velvet Cupcake", Category: CategoryCupcakes, Price: decimal.NewFromInt(449), Quantity: 15,
			Description: "Moist red velvet cupcake with cream cheese frosting"},
	}
}
