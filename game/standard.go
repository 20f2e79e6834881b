package game

type StandardRules struct {
	Money    int
	Bonus    int
	Sentence int
	Worth    int
	Faces    int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Money:    1500,
		Bonus:    200,
		Sentence: 3,
		Worth:    200,
		Faces:    6,
	}
}

func (sr *StandardRules) StartingMoney() int {
	return sr.Money
}

func (sr *StandardRules) GoBonus() int {
	return sr.Bonus
}

func (sr *StandardRules) JailSentence() int {
	return sr.Sentence
}

func (sr *StandardRules) PropertyWorth() int {
	return sr.Worth
}

func (sr *StandardRules) DieFaces() int {
	return sr.Faces
}
