package repoargs

type RepositoryName string

const (
	UserRepoName    RepositoryName = "user"
	ProfileRepoName RepositoryName = "profile"
	TripRepoName    RepositoryName = "trip"
	CardRepoName    RepositoryName = "card"
	OrderRepoName   RepositoryName = "order"
	ShopRepoName    RepositoryName = "shop"
	ProductRepoName RepositoryName = "product"
)
