package cmd

import (
	adapterhttp "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/filestore"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/redisstore"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	cartStore    *redisstore.RedisCartStore
	sessionStore *redisstore.RedisSessionStore
	fileStore    *filestore.DiskFileStore
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client) (CompositionRoot, error) {
	fileStore, err := filestore.NewDiskFileStore(config.UploadDir)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:    redisstore.NewRedisCartStore(redisClient),
		sessionStore: redisstore.NewRedisSessionStore(redisClient),
		fileStore:    fileStore,
	}, nil
}

func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return &c.uowFactory
}

func (c *CompositionRoot) CartStore() ports.CartStore {
	return c.cartStore
}

func (c *CompositionRoot) SessionStore() ports.SessionStore {
	return c.sessionStore
}

func (c *CompositionRoot) FileStore() ports.FileStore {
	return c.fileStore
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	var f commands.AccountItemUoWFactory = FuncAccountItemUoWFactory(func() commands.AccountItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemCommandHandler(f)
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	var f commands.AccountItemUoWFactory = FuncAccountItemUoWFactory(func() commands.AccountItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustStockCommandHandler(f)
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddToCartCommandHandler(c.cartStore, f)
}

func (c *CompositionRoot) CreateRemoveFromCartCommandHandler() commands.RemoveFromCartCommandHandler {
	return commands.NewRemoveFromCartCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(c.cartStore, f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.AccountOrderUoWFactory = FuncAccountOrderUoWFactory(func() commands.AccountOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateFinalizeOrderCommandHandler() commands.FinalizeOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoriesQueryHandler() queries.GetCategoriesQueryHandler {
	return queries.NewGetCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.cartStore, c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierBoardQueryHandler() queries.GetCourierBoardQueryHandler {
	return queries.NewGetCourierBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreInventoryQueryHandler() queries.GetStoreInventoryQueryHandler {
	return queries.NewGetStoreInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSalesHistoryQueryHandler() queries.GetSalesHistoryQueryHandler {
	return queries.NewGetSalesHistoryQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every command and query handler for the server.
func (c *CompositionRoot) CreateHTTPHandlers() adapterhttp.Handlers {
	return adapterhttp.Handlers{
		RegisterAccount: c.CreateRegisterAccountCommandHandler(),
		AddItem:         c.CreateAddItemCommandHandler(),
		AdjustStock:     c.CreateAdjustStockCommandHandler(),
		AddToCart:       c.CreateAddToCartCommandHandler(),
		RemoveFromCart:  c.CreateRemoveFromCartCommandHandler(),
		ClearCart:       c.CreateClearCartCommandHandler(),
		Checkout:        c.CreateCheckoutCommandHandler(),
		AcceptOrder:     c.CreateAcceptOrderCommandHandler(),
		FinalizeOrder:   c.CreateFinalizeOrderCommandHandler(),

		GetCatalog:        c.CreateGetCatalogQueryHandler(),
		GetCategories:     c.CreateGetCategoriesQueryHandler(),
		GetCart:           c.CreateGetCartQueryHandler(),
		GetCustomerOrders: c.CreateGetCustomerOrdersQueryHandler(),
		GetCourierBoard:   c.CreateGetCourierBoardQueryHandler(),
		GetStoreInventory: c.CreateGetStoreInventoryQueryHandler(),
		GetSalesHistory:   c.CreateGetSalesHistoryQueryHandler(),
	}
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAccountItemUoWFactory func() commands.AccountItemUoW

func (f FuncAccountItemUoWFactory) Create() commands.AccountItemUoW {
	return f()
}

type FuncAccountOrderUoWFactory func() commands.AccountOrderUoW

func (f FuncAccountOrderUoWFactory) Create() commands.AccountOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
