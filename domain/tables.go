package domain

// Table is a mongo collection name
type Table string

const (
	TableListings     Table = "listings"
	TableLoans        Table = "loans"
	TableFulfillments Table = "fulfillments"
	TableAccounts     Table = "accounts"
	TableAssets       Table = "assets"
)
