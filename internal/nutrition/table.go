package nutrition

// Row is one reference entry: macros per single base unit.
type Row struct {
	Aliases []string
	Base    string
	Macros  Macros
}

// table is scanned top to bottom and the first row that yields a positive
// factor wins, so earlier rows shadow later ones on ambiguous names.
var table = []Row{
	{Aliases: []string{"flour", "all-purpose flour", "all purpose flour", "plain flour"}, Base: UnitCup, Macros: Macros{Calories: 455, Protein: 13, Carbs: 95, Fat: 1}},
	{Aliases: []string{"sugar", "granulated sugar", "white sugar", "caster sugar"}, Base: UnitCup, Macros: Macros{Calories: 774, Protein: 0, Carbs: 200, Fat: 0}},
	{Aliases: []string{"brown sugar"}, Base: UnitCup, Macros: Macros{Calories: 828, Protein: 0, Carbs: 214, Fat: 0}},
	{Aliases: []string{"butter"}, Base: UnitCup, Macros: Macros{Calories: 1628, Protein: 2, Carbs: 0, Fat: 184}},
	{Aliases: []string{"milk", "whole milk", "full-fat milk"}, Base: UnitCup, Macros: Macros{Calories: 149, Protein: 8, Carbs: 12, Fat: 8}},
	{Aliases: []string{"skim milk", "skimmed milk", "fat-free milk"}, Base: UnitCup, Macros: Macros{Calories: 83, Protein: 8, Carbs: 12, Fat: 0}},
	{Aliases: []string{"egg", "eggs", "large egg", "large eggs"}, Base: UnitEgg, Macros: Macros{Calories: 72, Protein: 6, Carbs: 0, Fat: 5}},
	{Aliases: []string{"cocoa powder", "unsweetened cocoa", "cocoa"}, Base: UnitCup, Macros: Macros{Calories: 196, Protein: 17, Carbs: 47, Fat: 12}},
	{Aliases: []string{"oil", "vegetable oil", "cooking oil", "olive oil", "canola oil", "rapeseed oil"}, Base: UnitCup, Macros: Macros{Calories: 1927, Protein: 0, Carbs: 0, Fat: 218}},
	{Aliases: []string{"baking powder"}, Base: UnitTsp, Macros: Macros{Calories: 5, Protein: 0, Carbs: 1, Fat: 0}},
	{Aliases: []string{"baking soda", "bicarbonate of soda", "bicarb"}, Base: UnitTsp, Macros: Macros{Calories: 0, Protein: 0, Carbs: 0, Fat: 0}},
	{Aliases: []string{"salt", "table salt", "sea salt", "kosher salt"}, Base: UnitTsp, Macros: Macros{Calories: 0, Protein: 0, Carbs: 0, Fat: 0}},
	{Aliases: []string{"vanilla extract", "vanilla", "vanilla essence"}, Base: UnitTsp, Macros: Macros{Calories: 12, Protein: 0, Carbs: 1, Fat: 0}},
	{Aliases: []string{"honey"}, Base: UnitCup, Macros: Macros{Calories: 1031, Protein: 0, Carbs: 279, Fat: 0}},
	{Aliases: []string{"maple syrup"}, Base: UnitCup, Macros: Macros{Calories: 840, Protein: 0, Carbs: 216, Fat: 0}},
	{Aliases: []string{"cornstarch", "corn starch", "cornflour"}, Base: UnitCup, Macros: Macros{Calories: 488, Protein: 0, Carbs: 117, Fat: 0}},
	{Aliases: []string{"oatmeal", "rolled oats", "oats", "old-fashioned oats"}, Base: UnitCup, Macros: Macros{Calories: 307, Protein: 11, Carbs: 55, Fat: 5}},
	{Aliases: []string{"rice", "white rice", "long-grain rice", "jasmine rice"}, Base: UnitCup, Macros: Macros{Calories: 242, Protein: 4, Carbs: 53, Fat: 0}},
	{Aliases: []string{"breadcrumbs", "bread crumbs", "panko"}, Base: UnitCup, Macros: Macros{Calories: 427, Protein: 15, Carbs: 77, Fat: 6}},
	{Aliases: []string{"cream cheese"}, Base: UnitCup, Macros: Macros{Calories: 792, Protein: 14, Carbs: 8, Fat: 78}},
	{Aliases: []string{"sour cream"}, Base: UnitCup, Macros: Macros{Calories: 492, Protein: 7, Carbs: 9, Fat: 48}},
	{Aliases: []string{"yogurt", "greek yogurt", "plain yogurt"}, Base: UnitCup, Macros: Macros{Calories: 149, Protein: 8, Carbs: 11, Fat: 8}},
	{Aliases: []string{"cream", "heavy cream", "double cream", "whipping cream"}, Base: UnitCup, Macros: Macros{Calories: 821, Protein: 5, Carbs: 7, Fat: 88}},
	{Aliases: []string{"parmesan", "parmesan cheese", "parmigiano"}, Base: UnitCup, Macros: Macros{Calories: 431, Protein: 28, Carbs: 4, Fat: 29}},
	{Aliases: []string{"cheddar", "cheddar cheese", "sharp cheddar"}, Base: UnitCup, Macros: Macros{Calories: 455, Protein: 28, Carbs: 1, Fat: 37}},
	{Aliases: []string{"mozzarella", "mozzarella cheese"}, Base: UnitCup, Macros: Macros{Calories: 336, Protein: 25, Carbs: 3, Fat: 25}},
	{Aliases: []string{"garlic", "garlic clove", "garlic cloves"}, Base: UnitClove, Macros: Macros{Calories: 4, Protein: 0, Carbs: 1, Fat: 0}},
	{Aliases: []string{"onion", "onions", "yellow onion", "white onion"}, Base: UnitCup, Macros: Macros{Calories: 64, Protein: 2, Carbs: 15, Fat: 0}},
	{Aliases: []string{"tomato", "tomatoes", "tomato puree", "tomato paste"}, Base: UnitCup, Macros: Macros{Calories: 32, Protein: 2, Carbs: 7, Fat: 0}},
	{Aliases: []string{"chicken broth", "chicken stock", "vegetable broth", "vegetable stock", "beef broth", "stock"}, Base: UnitCup, Macros: Macros{Calories: 39, Protein: 5, Carbs: 1, Fat: 1}},
	{Aliases: []string{"soy sauce"}, Base: UnitTbsp, Macros: Macros{Calories: 9, Protein: 1, Carbs: 1, Fat: 0}},
	{Aliases: []string{"vinegar", "white vinegar", "apple cider vinegar", "red wine vinegar"}, Base: UnitTbsp, Macros: Macros{Calories: 3, Protein: 0, Carbs: 0, Fat: 0}},
	{Aliases: []string{"mustard", "dijon mustard", "yellow mustard"}, Base: UnitTsp, Macros: Macros{Calories: 3, Protein: 0, Carbs: 0, Fat: 0}},
	{Aliases: []string{"mayonnaise", "mayo"}, Base: UnitTbsp, Macros: Macros{Calories: 94, Protein: 0, Carbs: 0, Fat: 10}},
	{Aliases: []string{"ketchup", "tomato ketchup"}, Base: UnitTbsp, Macros: Macros{Calories: 17, Protein: 0, Carbs: 5, Fat: 0}},
	{Aliases: []string{"peanut butter", "almond butter"}, Base: UnitTbsp, Macros: Macros{Calories: 94, Protein: 4, Carbs: 3, Fat: 8}},
	{Aliases: []string{"nuts", "almonds", "walnuts", "pecans", "cashews", "peanuts"}, Base: UnitCup, Macros: Macros{Calories: 523, Protein: 15, Carbs: 21, Fat: 45}},
	{Aliases: []string{"chocolate chips", "chocolate chunks", "dark chocolate chips"}, Base: UnitCup, Macros: Macros{Calories: 805, Protein: 9, Carbs: 93, Fat: 51}},
	{Aliases: []string{"coconut", "shredded coconut", "desiccated coconut"}, Base: UnitCup, Macros: Macros{Calories: 283, Protein: 3, Carbs: 12, Fat: 27}},
	{Aliases: []string{"lemon juice", "lime juice", "citrus juice"}, Base: UnitTbsp, Macros: Macros{Calories: 4, Protein: 0, Carbs: 1, Fat: 0}},
	{Aliases: []string{"olives"}, Base: UnitCup, Macros: Macros{Calories: 154, Protein: 1, Carbs: 8, Fat: 15}},
	{Aliases: []string{"spinach", "baby spinach", "leaf spinach"}, Base: UnitCup, Macros: Macros{Calories: 7, Protein: 1, Carbs: 1, Fat: 0}},
	{Aliases: []string{"lettuce", "romaine", "iceberg", "mixed greens"}, Base: UnitCup, Macros: Macros{Calories: 8, Protein: 1, Carbs: 2, Fat: 0}},
	{Aliases: []string{"carrot", "carrots"}, Base: UnitCup, Macros: Macros{Calories: 52, Protein: 1, Carbs: 12, Fat: 0}},
	{Aliases: []string{"celery"}, Base: UnitCup, Macros: Macros{Calories: 14, Protein: 1, Carbs: 3, Fat: 0}},
	{Aliases: []string{"bell pepper", "bell peppers", "pepper", "red pepper", "green pepper"}, Base: UnitCup, Macros: Macros{Calories: 46, Protein: 1, Carbs: 9, Fat: 0}},
	{Aliases: []string{"potato", "potatoes", "russet potato", "yukon gold"}, Base: UnitCup, Macros: Macros{Calories: 116, Protein: 2, Carbs: 27, Fat: 0}},
	{Aliases: []string{"black pepper", "ground pepper", "peppercorns"}, Base: UnitTsp, Macros: Macros{Calories: 6, Protein: 0, Carbs: 2, Fat: 0}},
	{Aliases: []string{"paprika", "smoked paprika"}, Base: UnitTsp, Macros: Macros{Calories: 6, Protein: 0, Carbs: 1, Fat: 0}},
	{Aliases: []string{"cumin", "ground cumin"}, Base: UnitTsp, Macros: Macros{Calories: 8, Protein: 0, Carbs: 1, Fat: 0}},
	{Aliases: []string{"cinnamon", "ground cinnamon"}, Base: UnitTsp, Macros: Macros{Calories: 6, Protein: 0, Carbs: 2, Fat: 0}},
	{Aliases: []string{"nutmeg", "ground nutmeg"}, Base: UnitTsp, Macros: Macros{Calories: 12, Protein: 0, Carbs: 1, Fat: 1}},
	{Aliases: []string{"oregano", "dried oregano", "fresh oregano"}, Base: UnitTsp, Macros: Macros{Calories: 3, Protein: 0, Carbs: 1, Fat: 0}},
	{Aliases: []string{"basil", "fresh basil", "dried basil"}, Base: UnitTsp, Macros: Macros{Calories: 1, Protein: 0, Carbs: 0, Fat: 0}},
	{Aliases: []string{"parsley", "fresh parsley", "dried parsley"}, Base: UnitTbsp, Macros: Macros{Calories: 1, Protein: 0, Carbs: 0, Fat: 0}},
	{Aliases: []string{"thyme", "fresh thyme", "dried thyme"}, Base: UnitTsp, Macros: Macros{Calories: 3, Protein: 0, Carbs: 1, Fat: 0}},
	{Aliases: []string{"rosemary", "fresh rosemary", "dried rosemary"}, Base: UnitTsp, Macros: Macros{Calories: 4, Protein: 0, Carbs: 1, Fat: 0}},
	{Aliases: []string{"gelatin", "gelatine"}, Base: UnitTbsp, Macros: Macros{Calories: 32, Protein: 8, Carbs: 0, Fat: 0}},
	{Aliases: []string{"corn syrup", "light corn syrup", "golden syrup"}, Base: UnitCup, Macros: Macros{Calories: 1031, Protein: 0, Carbs: 279, Fat: 0}},
	{Aliases: []string{"molasses"}, Base: UnitTbsp, Macros: Macros{Calories: 58, Protein: 0, Carbs: 15, Fat: 0}},
	{Aliases: []string{"raisins", "dried raisins"}, Base: UnitCup, Macros: Macros{Calories: 434, Protein: 5, Carbs: 115, Fat: 1}},
	{Aliases: []string{"cranberries", "dried cranberries", "craisins"}, Base: UnitCup, Macros: Macros{Calories: 123, Protein: 0, Carbs: 33, Fat: 0}},
	{Aliases: []string{"banana", "bananas"}, Base: UnitCup, Macros: Macros{Calories: 200, Protein: 2, Carbs: 51, Fat: 1}},
	{Aliases: []string{"apple", "apples"}, Base: UnitCup, Macros: Macros{Calories: 57, Protein: 0, Carbs: 15, Fat: 0}},
	{Aliases: []string{"water"}, Base: UnitCup, Macros: Macros{Calories: 0, Protein: 0, Carbs: 0, Fat: 0}},
}

// Rows returns a copy of the reference table in lookup order.
func Rows() []Row {
	out := make([]Row, len(table))
	copy(out, table)
	return out
}
