package wordlist

// TopPasswords are the most common leaked passwords.
var TopPasswords = []string{
	"123456", "password", "12345678", "qwerty", "123456789", "12345", "1234", "111111",
	"1234567", "dragon", "123123", "baseball", "iloveyou", "trustno1", "1234567890",
	"sunshine", "master", "welcome", "shadow", "ashley", "football", "jesus", "michael",
	"ninja", "mustang", "password1", "admin", "root", "pass", "letmein", "monkey", "000000",
	"696969", "666666", "121212", "112233", "654321", "superman", "batman", "abc123",
	"password123", "qwerty123", "admin123", "test", "test123", "guest", "hello", "secret",
	"love", "god", "money", "access", "lovely", "whatever", "princess", "qwertyuiop",
	"starwars", "freedom", "computer", "internet",
}

var CommonWords = []string{
	"account", "alice", "alpha", "anderson", "andrew", "angel", "animal", "anthony",
	"apple", "april", "august", "austin", "baby", "badboy", "banana", "barney", "batman",
	"beach", "bear", "beautiful", "beaver", "beavis", "beer", "betty", "bigdaddy", "bigdog",
	"bill", "billy", "birdie", "black", "blazer", "blonde", "blue", "bob", "bobby",
	"bond007", "bonnie", "booboo", "booger", "boomer", "boss", "boston", "brandon",
	"brandy", "braves", "brazil", "brian", "bronco", "bubba", "buddy", "bull", "bulldog",
	"buster", "butter", "butthead", "calvin", "camaro", "cameron", "canada", "captain",
	"carlos", "carter", "casper", "cat", "charles", "cherry", "chicago", "chicken", "chris",
	"cisco", "clark", "coffee", "college", "compaq", "cookie", "cool", "cooper", "corvette",
	"cowboy", "cowboys", "crystal", "dakota", "dallas", "daniel", "danielle", "dave",
	"david", "debbie", "dennis", "diablo", "diamond", "dick", "doctor", "doggie", "dolphin",
	"dolphins", "donald", "driver", "eagle", "eagles", "edward", "einstein", "elaine",
	"emily", "emma", "enjoy", "enter", "eric", "erotic", "extreme", "falcon", "fender",
	"ferrari", "fire", "firebird", "fish", "fishing", "florida", "flower", "flyers", "ford",
	"forest", "forever", "frank", "fred", "freddy", "friend", "friends", "galaxy", "game",
	"gandalf", "garden", "garfield", "george", "giants", "ginger", "girl", "girls",
	"golden", "golf", "golfer", "gordon", "great", "green", "gregory", "guitar", "gunner",
	"hammer", "hannah", "happy", "hardcore", "harley", "harry", "hawk", "heaven", "heather",
	"hello", "helpme", "henry", "hockey", "homer", "honey", "hooter", "horney", "horny",
	"hotdog", "house", "hunter", "hunting",
}

var Names = []string{
	"james", "mary", "john", "patricia", "robert", "jennifer", "michael", "linda",
	"william", "barbara", "david", "elizabeth", "richard", "susan", "joseph", "jessica",
	"thomas", "sarah", "charles", "karen", "christopher", "nancy", "daniel", "lisa",
	"matthew", "betty", "anthony", "margaret", "donald", "sandra", "mark", "ashley",
}

// KeyboardPatterns are keyboard walks.
var KeyboardPatterns = []string{
	"qwerty", "asdfgh", "zxcvbn", "qwertyuiop", "asdfghjkl", "zxcvbnm", "qaz", "wsx", "edc",
	"rfv", "tgb", "yhn", "ujm", "ik", "ol", "p", "qazwsx", "wsxedc", "edcrfv", "rfvtgb",
	"tgbyhn", "yhnujm", "1qaz2wsx", "2wsx3edc", "3edc4rfv", "4rfv5tgb", "5tgb6yhn",
}

var LeetSubstitutions = []string{
	"p@ssw0rd", "p@ssword", "passw0rd", "pa$$word", "pa$$w0rd", "adm1n", "@dmin", "4dmin",
	"admin1", "admin12", "admin123", "r00t", "ro0t", "r007", "root123",
}

// Extended dictionaries, added on top of the base ones at ultra and mega scale.
var extendedTopPasswords = []string{
	"charlie", "summer", "flower", "bailey", "maggie", "pepper", "sophie", "hunter",
	"angel", "austin", "hockey", "killer", "tigger", "password12", "welcome1",
}

var extendedCommonWords = []string{
	"iceman", "iloveu", "jackson", "jaguar", "jasmine", "jason", "jordan", "joseph",
	"joshua", "justin", "killer", "knight", "lakers", "lauren", "leather", "legend",
	"little", "london", "louise", "lover", "lucas", "lucky", "maddog", "madison", "maggie",
	"magic", "marine", "marlboro", "martin", "marvin", "master", "matrix", "maxwell",
	"melissa", "member", "mercedes", "midnight", "miller", "mobile", "monkey", "morgan",
	"mother", "mountain", "music", "nathan", "nascar", "nicole", "oliver", "orange",
	"pacific", "panther", "parker", "patrick", "peaches", "peanut", "pepper", "phantom",
	"phoenix", "player", "please", "pokemon", "pookie", "porsche", "power", "prince",
	"purple", "qazwsx", "rabbit", "rachel", "racing", "raiders", "rainbow", "ranger",
	"raven", "redsox", "richard", "robert", "rocket", "rosebud", "runner", "russell",
	"samantha", "sammy", "samson", "sandra", "saturn", "scooby", "scooter", "scorpio",
	"scorpion", "scotland", "sebastian", "secret", "senior", "shadow", "shannon", "shelly",
	"sierra", "silver", "skippy", "slayer", "smokey", "snoopy", "soccer", "sophie",
	"spanky", "sparky", "spider", "squirt", "stanley", "steelers", "stephen", "steve",
	"steven", "stewart", "sticky", "stone", "stupid", "success", "summer", "sunshine",
	"super", "superman", "surfer", "swimming", "sydney", "taylor", "tennis", "teresa",
	"terminal", "theman", "thomas", "thunder", "thx1138", "tiffany", "tiger", "tigger",
	"time", "tomcat", "toolman", "topgun", "toyota", "travis", "trouble", "trustno1",
	"tucker", "turtle", "united", "vagina", "victor", "victoria", "video", "viking",
	"viper", "voodoo", "voyager", "walter", "warrior", "welcome", "whatever", "white",
	"william", "willie", "wilson", "winner", "winston", "winter", "wizard", "wolf",
	"wolverine", "xavier", "yellow", "zeppelin", "zorro", "zxcvbnm",
}

var extendedNames = []string{
	"paul", "kimberly", "steven", "emily", "andrew", "donna", "kenneth", "michelle",
	"joshua", "dorothy", "kevin", "carol", "brian", "amanda", "george", "melissa", "edward",
	"deborah", "ronald", "stephanie", "timothy", "rebecca", "jason", "sharon", "jeffrey",
	"laura", "ryan", "cynthia", "jacob", "kathleen", "gary", "amy", "nicholas", "shirley",
	"eric", "angela", "jonathan", "helen", "stephen", "anna",
}
