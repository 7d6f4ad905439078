package text

// stopwords is the fixed list of common English function words and
// citation-boilerplate abbreviations dropped before keyword counting.
var stopwords = map[string]bool{
	"0s": true, "a": true, "able": true, "about": true, "above": true, "accordance": true,
	"according": true, "accordingly": true, "across": true, "act": true, "actually": true,
	"added": true, "adj": true, "af": true, "affected": true, "affecting": true, "affects": true,
	"after": true, "afterwards": true, "ag": true, "again": true, "against": true, "ain't": true,
	"all": true, "allow": true, "allows": true, "almost": true, "alone": true, "along": true,
	"already": true, "also": true, "although": true, "always": true, "am": true, "among": true,
	"amongst": true, "amoungst": true, "amount": true, "an": true, "and": true, "announce": true,
	"another": true, "any": true, "anybody": true, "anyhow": true, "anymore": true,
	"anyone": true, "anything": true, "anyway": true, "anyways": true, "anywhere": true,
	"apart": true, "apparently": true, "appear": true, "appreciate": true, "appropriate": true,
	"approximately": true, "are": true, "aren": true, "aren't": true, "arent": true,
	"arise": true, "around": true, "as": true, "aside": true, "ask": true, "asking": true,
	"associated": true, "at": true, "available": true, "aw": true, "away": true, "awfully": true,
	"back": true, "be": true, "became": true, "because": true, "become": true, "becomes": true,
	"becoming": true, "been": true, "before": true, "beforehand": true, "begin": true,
	"beginning": true, "beginnings": true, "begins": true, "behind": true, "being": true,
	"believe": true, "below": true, "beside": true, "besides": true, "best": true, "better": true,
	"between": true, "beyond": true, "bill": true, "both": true, "bottom": true, "brief": true,
	"briefly": true, "bs": true, "but": true, "bx": true, "c'mon": true, "call": true,
	"came": true, "can": true, "can't": true, "cannot": true, "cant": true, "cause": true,
	"causes": true, "certain": true, "certainly": true, "changes": true, "clearly": true,
	"co": true, "come": true, "comes": true, "con": true, "concerning": true,
	"consequently": true, "consider": true, "considering": true, "contain": true,
	"containing": true, "contains": true, "corresponding": true, "could": true, "couldn": true,
	"couldn't": true, "couldnt": true, "course": true, "cry": true, "currently": true,
	"date": true, "definitely": true, "describe": true, "described": true, "despite": true,
	"detail": true, "did": true, "didn't": true, "different": true, "do": true, "does": true,
	"doesn": true, "doesn't": true, "doing": true, "don": true, "don't": true, "done": true,
	"down": true, "downwards": true, "dr": true, "due": true, "during": true, "each": true,
	"effect": true, "eg": true, "eight": true, "eighty": true, "either": true, "eleven": true,
	"else": true, "elsewhere": true, "empty": true, "end": true, "ending": true, "enough": true,
	"entirely": true, "especially": true, "et": true, "et-al": true, "etc": true, "even": true,
	"ever": true, "every": true, "everybody": true, "everyone": true, "everything": true,
	"everywhere": true, "exactly": true, "example": true, "except": true, "far": true,
	"few": true, "ff": true, "fifteen": true, "fifth": true, "fify": true, "fill": true,
	"find": true, "fire": true, "first": true, "five": true, "fix": true, "followed": true,
	"following": true, "follows": true, "for": true, "former": true, "formerly": true,
	"forth": true, "forty": true, "found": true, "four": true, "fr": true, "from": true,
	"front": true, "ft": true, "full": true, "further": true, "furthermore": true, "gave": true,
	"ge": true, "get": true, "gets": true, "getting": true, "give": true, "giveaway": true,
	"given": true, "gives": true, "giving": true, "go": true, "goes": true, "going": true,
	"gone": true, "got": true, "gotten": true, "greetings": true, "h2": true, "h3": true,
	"had": true, "hadn": true, "hadn't": true, "happens": true, "hardly": true, "has": true,
	"hasn": true, "hasn't": true, "hasnt": true, "have": true, "haven": true, "haven't": true,
	"having": true, "he": true, "he'd": true, "he'll": true, "he's": true, "hello": true,
	"help": true, "hence": true, "her": true, "here": true, "here's": true, "hereafter": true,
	"hereby": true, "herein": true, "heres": true, "hereupon": true, "hers": true,
	"herself": true, "hes": true, "hi": true, "hid": true, "him": true, "himself": true,
	"his": true, "hither": true, "ho": true, "home": true, "hopefully": true, "how": true,
	"how's": true, "howbeit": true, "however": true, "http": true, "hundred": true, "i": true,
	"i'd": true, "i'll": true, "i'm": true, "i've": true, "ie": true, "if": true, "ignored": true,
	"immediate": true, "immediately": true, "importance": true, "important": true, "in": true,
	"inasmuch": true, "inc": true, "indeed": true, "index": true, "indicate": true,
	"indicated": true, "indicates": true, "information": true, "inner": true, "insofar": true,
	"instead": true, "interest": true, "into": true, "invention": true, "inward": true,
	"io": true, "is": true, "isn't": true, "it": true, "it'd": true, "it'll": true, "it's": true,
	"its": true, "itself": true, "just": true, "keep": true, "keeps": true, "kept": true,
	"kg": true, "km": true, "know": true, "known": true, "knows": true, "largely": true,
	"last": true, "lately": true, "later": true, "latter": true, "latterly": true, "least": true,
	"les": true, "less": true, "lest": true, "let": true, "let's": true, "lets": true, "lf": true,
	"like": true, "liked": true, "likely": true, "line": true, "little": true, "look": true,
	"looking": true, "looks": true, "ltd": true, "made": true, "mainly": true, "make": true,
	"makes": true, "many": true, "may": true, "maybe": true, "me": true, "mean": true,
	"means": true, "meantime": true, "meanwhile": true, "merely": true, "mg": true, "might": true,
	"mightn": true, "mightn't": true, "mill": true, "million": true, "mine": true, "miss": true,
	"ml": true, "mn": true, "mo": true, "more": true, "moreover": true, "most": true,
	"mostly": true, "move": true, "mr": true, "mrs": true, "ms": true, "much": true, "mug": true,
	"must": true, "mustn't": true, "my": true, "myself": true, "n": true, "na": true,
	"name": true, "namely": true, "nay": true, "nc": true, "nd": true, "ne": true, "near": true,
	"nearly": true, "necessarily": true, "necessary": true, "need": true, "needn": true,
	"needn't": true, "needs": true, "neither": true, "never": true, "nevertheless": true,
	"new": true, "next": true, "ng": true, "nine": true, "ninety": true, "no": true,
	"nobody": true, "non": true, "none": true, "nonetheless": true, "noone": true, "nor": true,
	"normally": true, "nos": true, "not": true, "noted": true, "nothing": true, "novel": true,
	"now": true, "nowhere": true, "obtain": true, "obtained": true, "obviously": true, "oc": true,
	"od": true, "of": true, "off": true, "often": true, "oh": true, "ok": true, "okay": true,
	"old": true, "omitted": true, "on": true, "once": true, "one": true, "ones": true,
	"only": true, "onto": true, "op": true, "or": true, "other": true, "others": true,
	"otherwise": true, "ought": true, "our": true, "ours": true, "ourselves": true, "out": true,
	"outside": true, "over": true, "overall": true, "owing": true, "own": true, "p1": true,
	"p2": true, "p3": true, "page": true, "pagecount": true, "pages": true, "par": true,
	"part": true, "particular": true, "particularly": true, "pas": true, "past": true,
	"per": true, "perhaps": true, "placed": true, "please": true, "plus": true, "poorly": true,
	"possible": true, "possibly": true, "potentially": true, "predominantly": true,
	"present": true, "presumably": true, "previously": true, "primarily": true, "probably": true,
	"promptly": true, "proud": true, "provides": true, "ps": true, "put": true, "que": true,
	"quickly": true, "quite": true, "ran": true, "rather": true, "re": true, "readily": true,
	"really": true, "reasonably": true, "recent": true, "recently": true, "ref": true,
	"refs": true, "regarding": true, "regardless": true, "regards": true, "related": true,
	"relatively": true, "respectively": true, "resulted": true, "resulting": true,
	"results": true, "right": true, "run": true, "said": true, "same": true, "saw": true,
	"say": true, "saying": true, "says": true, "sec": true, "second": true, "secondly": true,
	"section": true, "see": true, "seeing": true, "seem": true, "seemed": true, "seeming": true,
	"seems": true, "seen": true, "self": true, "selves": true, "sensible": true, "sent": true,
	"serious": true, "seriously": true, "seven": true, "several": true, "shall": true,
	"she": true, "she'd": true, "she'll": true, "she's": true, "shed": true, "shes": true,
	"should": true, "should've": true, "shouldn": true, "shouldn't": true, "show": true,
	"showed": true, "shown": true, "showns": true, "shows": true, "side": true,
	"significant": true, "significantly": true, "similar": true, "similarly": true, "since": true,
	"sincere": true, "six": true, "sixty": true, "slightly": true, "so": true, "some": true,
	"somebody": true, "somehow": true, "someone": true, "somethan": true, "something": true,
	"sometime": true, "sometimes": true, "somewhat": true, "somewhere": true, "soon": true,
	"sorry": true, "specifically": true, "specified": true, "specify": true, "specifying": true,
	"still": true, "stop": true, "strongly": true, "sub": true, "substantially": true,
	"successfully": true, "such": true, "sufficiently": true, "suggest": true, "sup": true,
	"sure": true, "system": true, "take": true, "taken": true, "taking": true, "tell": true,
	"ten": true, "tends": true, "than": true, "thank": true, "thanks": true, "thanx": true,
	"that": true, "that'll": true, "that's": true, "that've": true, "thats": true, "the": true,
	"their": true, "theirs": true, "them": true, "themselves": true, "then": true, "thence": true,
	"there": true, "there'll": true, "there's": true, "there've": true, "thereafter": true,
	"thereby": true, "thered": true, "therefore": true, "therein": true, "thereof": true,
	"therere": true, "theres": true, "thereto": true, "thereupon": true, "these": true,
	"they": true, "they'd": true, "they'll": true, "they're": true, "they've": true,
	"theyd": true, "theyre": true, "thick": true, "thin": true, "think": true, "third": true,
	"this": true, "thorough": true, "thoroughly": true, "those": true, "thou": true,
	"though": true, "thoughh": true, "thousand": true, "three": true, "throug": true,
	"through": true, "throughout": true, "thru": true, "thus": true, "til": true, "tip": true,
	"to": true, "together": true, "too": true, "took": true, "top": true, "toward": true,
	"towards": true, "tried": true, "tries": true, "truly": true, "try": true, "trying": true,
	"twelve": true, "twenty": true, "twice": true, "two": true, "un": true, "under": true,
	"unfortunately": true, "unless": true, "unlike": true, "unlikely": true, "until": true,
	"unto": true, "up": true, "upon": true, "ups": true, "us": true, "use": true, "used": true,
	"useful": true, "usefully": true, "usefulness": true, "uses": true, "using": true,
	"usually": true, "value": true, "various": true, "very": true, "via": true, "viz": true,
	"vol": true, "vols": true, "want": true, "wants": true, "was": true, "wasn": true,
	"wasn't": true, "wasnt": true, "way": true, "we": true, "we'd": true, "we'll": true,
	"we're": true, "we've": true, "wed": true, "welcome": true, "well": true, "went": true,
	"were": true, "weren": true, "weren't": true, "werent": true, "what": true, "what'll": true,
	"what's": true, "whatever": true, "whats": true, "when": true, "when's": true, "whence": true,
	"whenever": true, "where": true, "where's": true, "whereafter": true, "whereas": true,
	"whereby": true, "wherein": true, "wheres": true, "whereupon": true, "wherever": true,
	"whether": true, "which": true, "while": true, "whim": true, "whither": true, "who": true,
	"who'll": true, "who's": true, "whod": true, "whoever": true, "whole": true, "whom": true,
	"whomever": true, "whose": true, "why": true, "why's": true, "widely": true, "will": true,
	"willing": true, "wish": true, "with": true, "within": true, "without": true, "won't": true,
	"wonder": true, "wont": true, "words": true, "world": true, "would": true, "wouldn": true,
	"wouldn't": true, "www": true, "yes": true, "yet": true, "you": true, "you'd": true,
	"you'll": true, "you're": true, "you've": true, "your": true, "yours": true, "yourself": true,
	"yourselves": true, "zero": true,
}

// IsStopword reports whether a lowercased token is on the stop list.
func IsStopword(word string) bool {
	return stopwords[word]
}
