package db

import (
	"fmt"
	"math"
	"time"

	"github.com/ikkim/commerce-backend/internal/app/model"
	apperrors "github.com/ikkim/commerce-backend/internal/errors"
	"github.com/ikkim/commerce-backend/pkg/logger"
	"github.com/ikkim/commerce-backend/pkg/util"
	"gorm.io/gorm"
)

// Seed loads the fixed sample dataset into an empty schema. Inserts run in
// strict dependency order; the first constraint violation aborts the load and
// the returned error names the entity, row position, and violated constraint.
// Running Seed against an already-populated database fails on the first
// unique key: use Reset first for a fresh load.
func Seed(gdb *gorm.DB) error {
	logger.Info("Seeding sample data...")

	users, err := seedUsers(gdb)
	if err != nil {
		return err
	}
	suppliers, err := seedSuppliers(gdb)
	if err != nil {
		return err
	}
	categories, err := seedCategories(gdb)
	if err != nil {
		return err
	}
	products, err := seedProducts(gdb, suppliers)
	if err != nil {
		return err
	}
	if err := seedProductCategories(gdb, products, categories); err != nil {
		return err
	}
	if err := seedInventories(gdb, products); err != nil {
		return err
	}
	addresses, err := seedAddresses(gdb, users)
	if err != nil {
		return err
	}
	orders, err := seedOrders(gdb, users, addresses, products)
	if err != nil {
		return err
	}
	if err := seedPayments(gdb, orders); err != nil {
		return err
	}
	if err := seedProductImages(gdb, products); err != nil {
		return err
	}
	if err := seedReviews(gdb, products, users); err != nil {
		return err
	}
	if err := seedPriceHistory(gdb, products, users); err != nil {
		return err
	}

	logger.Info("Sample data seeded successfully")
	return nil
}

// createRow inserts a single seed row and reports the violated constraint on
// failure. Position is 1-based within the entity's seed set.
func createRow(gdb *gorm.DB, entity string, position int, value interface{}) error {
	if err := gdb.Create(value).Error; err != nil {
		info := apperrors.ParseError(err, entity)
		logger.Error("Seed insert failed", err, map[string]interface{}{
			"entity":     entity,
			"row":        position,
			"code":       info.Code,
			"constraint": info.Constraint,
		})
		return fmt.Errorf("seed %s row %d: %s: %w", entity, position, info.Code, err)
	}
	return nil
}

func seedUsers(gdb *gorm.DB) ([]model.User, error) {
	hash, err := util.HashPassword("ChangeMe123!")
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	names := [][2]string{
		{"Emma Johnson", "emma.johnson@example.com"},
		{"Liam Smith", "liam.smith@example.com"},
		{"Olivia Brown", "olivia.brown@example.com"},
		{"Noah Davis", "noah.davis@example.com"},
		{"Ava Wilson", "ava.wilson@example.com"},
		{"Ethan Moore", "ethan.moore@example.com"},
		{"Sophia Taylor", "sophia.taylor@example.com"},
		{"Mason Anderson", "mason.anderson@example.com"},
		{"Isabella Thomas", "isabella.thomas@example.com"},
		{"Lucas Jackson", "lucas.jackson@example.com"},
	}

	users := make([]model.User, 0, 12)
	for _, n := range names {
		users = append(users, model.User{
			Name:         n[0],
			Email:        n[1],
			PasswordHash: hash,
			Role:         model.RoleCustomer,
		})
	}
	users = append(users,
		model.User{Name: "Hannah Lee", Email: "hannah.lee@commerce.local", PasswordHash: hash, Role: model.RoleAdmin},
		model.User{Name: "Daniel Park", Email: "daniel.park@commerce.local", PasswordHash: hash, Role: model.RoleAdmin},
	)

	for i := range users {
		if err := createRow(gdb, "user", i+1, &users[i]); err != nil {
			return nil, err
		}
	}

	logger.Info("Users seeded", map[string]interface{}{"count": len(users)})
	return users, nil
}

func seedSuppliers(gdb *gorm.DB) ([]model.Supplier, error) {
	suppliers := []model.Supplier{
		{Name: "Acme Wholesale", ContactEmail: "sales@acme-wholesale.com", ContactPhone: "+1-555-0100"},
		{Name: "Globex Trading", ContactEmail: "orders@globex-trading.com", ContactPhone: "+1-555-0101"},
		{Name: "Initech Distribution", ContactEmail: "contact@initech-dist.com", ContactPhone: "+1-555-0102"},
	}

	for i := range suppliers {
		if err := createRow(gdb, "supplier", i+1, &suppliers[i]); err != nil {
			return nil, err
		}
	}

	logger.Info("Suppliers seeded", map[string]interface{}{"count": len(suppliers)})
	return suppliers, nil
}

func seedCategories(gdb *gorm.DB) ([]model.Category, error) {
	categories := []model.Category{
		{Name: "Electronics", Description: "Consumer electronics and gadgets"},
		{Name: "Computers & Accessories", Description: "Computing hardware and peripherals"},
		{Name: "Books", Description: "Fiction and non-fiction titles"},
		{Name: "Clothing", Description: "Apparel for all seasons"},
		{Name: "Home & Garden", Description: "Household and garden supplies"},
	}

	for i := range categories {
		// Computers & Accessories sits under Electronics; the rest are roots.
		if categories[i].Name == "Computers & Accessories" {
			categories[i].ParentID = &categories[0].ID
		}
		if err := createRow(gdb, "category", i+1, &categories[i]); err != nil {
			return nil, err
		}
	}

	logger.Info("Categories seeded", map[string]interface{}{"count": len(categories)})
	return categories, nil
}

type seedProduct struct {
	sku       string
	name      string
	price     float64
	costPrice *float64
}

func cost(v float64) *float64 { return &v }

// seedCatalog lists 25 products, 5 per category, grouped in category order.
func seedCatalog() [][]seedProduct {
	return [][]seedProduct{
		{ // Electronics
			{"ELEC-0001", "Wireless Earbuds", 119.99, cost(72.50)},
			{"ELEC-0002", "4K Action Camera", 249.00, cost(161.00)},
			{"ELEC-0003", "Bluetooth Speaker", 59.95, cost(31.20)},
			{"ELEC-0004", "Smart Watch", 189.99, cost(118.40)},
			{"ELEC-0005", "USB-C Charging Hub", 39.99, nil},
		},
		{ // Computers & Accessories
			{"COMP-0001", "Mechanical Keyboard", 89.99, cost(52.00)},
			{"COMP-0002", "27-inch QHD Monitor", 329.00, cost(214.00)},
			{"COMP-0003", "Wireless Mouse", 34.50, cost(17.80)},
			{"COMP-0004", "Aluminium Laptop Stand", 45.00, nil},
			{"COMP-0005", "1TB NVMe SSD", 109.99, cost(74.30)},
		},
		{ // Books
			{"BOOK-0001", "The Silent Harbor", 18.99, cost(8.10)},
			{"BOOK-0002", "A Field Guide to Clouds", 24.50, cost(11.00)},
			{"BOOK-0003", "Midnight at the Observatory", 22.99, cost(10.40)},
			{"BOOK-0004", "Practical Sourdough", 29.95, cost(13.60)},
			{"BOOK-0005", "Histories of the Quiet Sea", 21.00, nil},
		},
		{ // Clothing
			{"CLTH-0001", "Classic Denim Jacket", 79.90, cost(41.00)},
			{"CLTH-0002", "Cotton Crew T-Shirt", 19.99, cost(7.20)},
			{"CLTH-0003", "Wool Beanie", 24.00, cost(9.80)},
			{"CLTH-0004", "Running Shorts", 32.50, cost(14.10)},
			{"CLTH-0005", "Packable Rain Jacket", 64.95, cost(33.70)},
		},
		{ // Home & Garden
			{"HOME-0001", "Ceramic Plant Pot", 27.99, cost(12.30)},
			{"HOME-0002", "LED Desk Lamp", 42.00, cost(23.50)},
			{"HOME-0003", "Scented Candle Set", 34.99, cost(15.00)},
			{"HOME-0004", "Cast Iron Skillet", 54.90, cost(29.60)},
			{"HOME-0005", "Garden Pruning Shears", 23.45, nil},
		},
	}
}

func seedProducts(gdb *gorm.DB, suppliers []model.Supplier) ([]model.Product, error) {
	var products []model.Product
	position := 0
	for _, group := range seedCatalog() {
		for _, p := range group {
			position++
			supplier := suppliers[(position-1)%len(suppliers)]
			product := model.Product{
				SKU:        p.sku,
				Name:       p.name,
				Price:      p.price,
				CostPrice:  p.costPrice,
				SupplierID: &supplier.ID,
				IsActive:   true,
			}
			if err := createRow(gdb, "product", position, &product); err != nil {
				return nil, err
			}
			products = append(products, product)
		}
	}

	logger.Info("Products seeded", map[string]interface{}{"count": len(products)})
	return products, nil
}

func seedProductCategories(gdb *gorm.DB, products []model.Product, categories []model.Category) error {
	// Products are grouped 5 per category, in category order.
	for i := range products {
		link := model.ProductCategory{
			ProductID:  products[i].ID,
			CategoryID: categories[i/5].ID,
		}
		if err := createRow(gdb, "product_category", i+1, &link); err != nil {
			return err
		}
	}

	logger.Info("Product categories seeded", map[string]interface{}{"count": len(products)})
	return nil
}

func seedInventories(gdb *gorm.DB, products []model.Product) error {
	for i := range products {
		location := "WH-EAST"
		if i%2 == 1 {
			location = "WH-WEST"
		}
		inv := model.Inventory{
			ProductID: products[i].ID,
			Quantity:  10 + (i*7)%90,
			Location:  location,
		}
		if err := createRow(gdb, "inventory", i+1, &inv); err != nil {
			return err
		}
	}

	logger.Info("Inventories seeded", map[string]interface{}{"count": len(products)})
	return nil
}

func seedAddresses(gdb *gorm.DB, users []model.User) ([]model.Address, error) {
	streets := []string{
		"14 Birch Lane", "221 Maple Street", "9 Harbor View", "48 Elm Court",
		"133 Cedar Avenue", "7 Willow Walk", "310 Oak Ridge", "55 Riverside Drive",
		"21 Chestnut Close", "402 Pinecrest Road",
	}
	cities := []string{
		"Portland", "Austin", "Seattle", "Denver", "Boston",
		"Chicago", "Raleigh", "Madison", "Savannah", "Tucson",
	}

	// One default address per customer; admins have none.
	addresses := make([]model.Address, 0, len(streets))
	for i := range streets {
		addr := model.Address{
			UserID:    users[i].ID,
			Street:    streets[i],
			City:      cities[i],
			Country:   "USA",
			IsDefault: true,
		}
		if err := createRow(gdb, "address", i+1, &addr); err != nil {
			return nil, err
		}
		addresses = append(addresses, addr)
	}

	logger.Info("Addresses seeded", map[string]interface{}{"count": len(addresses)})
	return addresses, nil
}

type seedOrderLine struct {
	product  int // index into products
	quantity int
	discount float64
}

type seedOrder struct {
	user    int // index into users / addresses
	billing bool
	status  model.OrderStatus
	lines   []seedOrderLine
}

func seedOrderSet() []seedOrder {
	return []seedOrder{
		{user: 0, billing: true, status: model.OrderStatusDelivered, lines: []seedOrderLine{
			{product: 0, quantity: 2}, {product: 5, quantity: 1},
		}},
		{user: 1, billing: false, status: model.OrderStatusProcessing, lines: []seedOrderLine{
			{product: 12, quantity: 1, discount: 5.00}, {product: 20, quantity: 3},
		}},
		{user: 2, billing: true, status: model.OrderStatusPending, lines: []seedOrderLine{
			{product: 7, quantity: 1},
		}},
		{user: 0, billing: false, status: model.OrderStatusShipped, lines: []seedOrderLine{
			{product: 3, quantity: 1}, {product: 15, quantity: 2}, {product: 22, quantity: 1},
		}},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func seedOrders(gdb *gorm.DB, users []model.User, addresses []model.Address, products []model.Product) ([]model.Order, error) {
	var orders []model.Order
	itemPosition := 0
	for i, so := range seedOrderSet() {
		var subtotal float64
		for _, line := range so.lines {
			subtotal += float64(line.quantity)*products[line.product].Price - line.discount
		}
		subtotal = round2(subtotal)

		shippingFee := 4.99
		if subtotal >= 100 {
			shippingFee = 0
		}
		tax := round2(subtotal * 0.08)

		order := model.Order{
			UserID:            users[so.user].ID,
			ShippingAddressID: addresses[so.user].ID,
			Status:            so.status,
			Subtotal:          subtotal,
			ShippingFee:       shippingFee,
			Tax:               tax,
			Total:             round2(subtotal + shippingFee + tax),
		}
		if so.billing {
			order.BillingAddressID = &addresses[so.user].ID
		}
		if err := createRow(gdb, "order", i+1, &order); err != nil {
			return nil, err
		}

		// Order items carry the product price as a point-in-time snapshot.
		for _, line := range so.lines {
			itemPosition++
			item := model.OrderItem{
				OrderID:   order.ID,
				ProductID: products[line.product].ID,
				Quantity:  line.quantity,
				UnitPrice: products[line.product].Price,
				Discount:  line.discount,
			}
			if err := createRow(gdb, "order_item", itemPosition, &item); err != nil {
				return nil, err
			}
		}

		orders = append(orders, order)
	}

	logger.Info("Orders seeded", map[string]interface{}{
		"orders": len(orders),
		"items":  itemPosition,
	})
	return orders, nil
}

func seedPayments(gdb *gorm.DB, orders []model.Order) error {
	paidAt := func(daysAgo int) *time.Time {
		t := time.Now().AddDate(0, 0, -daysAgo)
		return &t
	}

	payments := []model.Payment{
		{OrderID: orders[0].ID, Method: model.PaymentMethodCreditCard, Status: model.PaymentStatusCompleted, Amount: orders[0].Total, TransactionReference: "TXN-SEED-0001", PaidAt: paidAt(12)},
		{OrderID: orders[1].ID, Method: model.PaymentMethodPaypal, Status: model.PaymentStatusCompleted, Amount: orders[1].Total, TransactionReference: "TXN-SEED-0002", PaidAt: paidAt(3)},
		{OrderID: orders[2].ID, Method: model.PaymentMethodBankTransfer, Status: model.PaymentStatusPending, Amount: orders[2].Total, TransactionReference: "TXN-SEED-0003"},
		{OrderID: orders[3].ID, Method: model.PaymentMethodCashOnDelivery, Status: model.PaymentStatusCompleted, Amount: orders[3].Total, TransactionReference: "TXN-SEED-0004", PaidAt: paidAt(1)},
	}

	for i := range payments {
		if err := createRow(gdb, "payment", i+1, &payments[i]); err != nil {
			return err
		}
	}

	logger.Info("Payments seeded", map[string]interface{}{"count": len(payments)})
	return nil
}

func seedProductImages(gdb *gorm.DB, products []model.Product) error {
	var images []model.ProductImage
	for i := 0; i < 10; i++ {
		images = append(images, model.ProductImage{
			ProductID: products[i].ID,
			URL:       fmt.Sprintf("https://cdn.example.com/products/%s/main.jpg", products[i].SKU),
			IsPrimary: true,
		})
	}
	images = append(images, model.ProductImage{
		ProductID: products[0].ID,
		URL:       fmt.Sprintf("https://cdn.example.com/products/%s/angle.jpg", products[0].SKU),
	})

	for i := range images {
		if err := createRow(gdb, "product_image", i+1, &images[i]); err != nil {
			return err
		}
	}

	logger.Info("Product images seeded", map[string]interface{}{"count": len(images)})
	return nil
}

func seedReviews(gdb *gorm.DB, products []model.Product, users []model.User) error {
	reviews := []model.Review{
		{ProductID: products[0].ID, UserID: users[0].ID, Rating: 5, Title: "Great sound", Body: "Better than expected for the price."},
		{ProductID: products[0].ID, UserID: users[1].ID, Rating: 4, Title: "Solid buy", Body: "Battery life is decent, case feels sturdy."},
		{ProductID: products[5].ID, UserID: users[0].ID, Rating: 3, Title: "Loud switches", Body: "Types well but wakes the whole house."},
		{ProductID: products[12].ID, UserID: users[1].ID, Rating: 5, Title: "Couldn't put it down", Body: "Finished it in two evenings."},
		{ProductID: products[7].ID, UserID: users[2].ID, Rating: 4, Title: "Crisp panel", Body: "Good colors out of the box."},
		{ProductID: products[20].ID, UserID: users[3].ID, Rating: 2, Title: "Arrived chipped", Body: "Pot looks nice but mine had a crack."},
	}

	for i := range reviews {
		if err := createRow(gdb, "review", i+1, &reviews[i]); err != nil {
			return err
		}
	}

	logger.Info("Reviews seeded", map[string]interface{}{"count": len(reviews)})
	return nil
}

func seedPriceHistory(gdb *gorm.DB, products []model.Product, users []model.User) error {
	admin1 := users[10].ID
	admin2 := users[11].ID

	// Old prices predate the seed; new prices match the current catalog.
	entries := []model.PriceHistory{
		{ProductID: products[0].ID, OldPrice: 129.99, NewPrice: products[0].Price, ChangedByID: &admin1},
		{ProductID: products[12].ID, OldPrice: 24.99, NewPrice: products[12].Price, ChangedByID: &admin2},
		{ProductID: products[3].ID, OldPrice: 199.99, NewPrice: products[3].Price},
	}

	for i := range entries {
		if err := createRow(gdb, "price_history", i+1, &entries[i]); err != nil {
			return err
		}
	}

	logger.Info("Price history seeded", map[string]interface{}{"count": len(entries)})
	return nil
}
