package game

// Bank is the counterparty ID used in transfers with the bank.
const Bank = -1

// NoPlayer marks an unowned tile or an undecided winner.
const NoPlayer = -1

type JailChange int

const (
	JailUnchanged JailChange = iota
	JailSkipped              // sat out a turn in jail
	JailReleased             // sentence served, free from next turn
	JailSentenced            // landed on the jail tile
)

func (j JailChange) String() string {
	switch j {
	case JailSkipped:
		return "skipped"
	case JailReleased:
		return "released"
	case JailSentenced:
		return "sentenced"
	default:
		return "unchanged"
	}
}

// Resolution describes what the landing tile did to the mover.
type Resolution int

const (
	ResolvedNone Resolution = iota // no move this turn
	CollectedGoBonus
	SentToJail
	RestedOnPlain
	DrewChance
	Purchased
	DeclinedPurchase
	CannotAfford
	PaidRent
	OwnProperty
)

func (r Resolution) String() string {
	switch r {
	case CollectedGoBonus:
		return "collected_go_bonus"
	case SentToJail:
		return "sent_to_jail"
	case RestedOnPlain:
		return "rested"
	case DrewChance:
		return "drew_chance"
	case Purchased:
		return "purchased"
	case DeclinedPurchase:
		return "declined_purchase"
	case CannotAfford:
		return "cannot_afford"
	case PaidRent:
		return "paid_rent"
	case OwnProperty:
		return "own_property"
	default:
		return "none"
	}
}

// Transfer is a single movement of money. From or To is Bank for the bank.
type Transfer struct {
	From   int
	To     int
	Amount int
}

// TurnOutcome summarizes everything a call to TakeTurn changed.
type TurnOutcome struct {
	PlayerID   int
	Jail       JailChange
	Moved      bool
	Roll       int
	From       int
	To         int
	Tile       Tile // landing tile, nil when the player did not move
	Resolution Resolution
	Card       *ChanceCard
	Owner      int // property owner for PaidRent, NoPlayer otherwise
	Transfers  []Transfer
	MoneyDelta int // net change of the mover's money
	Eliminated bool
	GameOver   bool
	Winner     int
}
