package entities

// Table and column names shared by repositories and the store gateway.
const (
	TableCategories      = "product_categories"
	TableProducts        = "products"
	TableRecipes         = "recipes"
	TableRecipeParts     = "recipe_parts"
	TableBookings        = "bookings"
	TableLockers         = "lockers"
	TableOrders          = "orders"
	TableOrderedProducts = "ordered_products"

	ColCategoryID      = "category_id"
	ColProductID       = "product_id"
	ColRecipeID        = "recipe_id"
	ColBookingID       = "booking_id"
	ColLockerID        = "locker_id"
	ColOrderID         = "order_id"
	ColName            = "name"
	ColAssetsURL       = "assets_url"
	ColPrice           = "price"
	ColSize            = "size"
	ColAmountInStock   = "amount_in_stock"
	ColPeopleServed    = "people_served"
	ColPrepTime        = "prep_time"
	ColAmount          = "amount"
	ColMomentStart     = "moment_start"
	ColMomentEnd       = "moment_end"
	ColMomentCreated   = "moment_created"
	ColMomentDelivered = "moment_delivered"
	ColMomentGathered  = "moment_gathered"
)
