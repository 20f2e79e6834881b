package game

type Rules interface {
	StartingMoney() int
	GoBonus() int
	JailSentence() int
	PropertyWorth() int // net worth credited per owned property
	DieFaces() int
}
