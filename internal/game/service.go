package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/aaronzipp/mafia-host/internal/dispatch"
	"github.com/aaronzipp/mafia-host/internal/models"
	"github.com/aaronzipp/mafia-host/internal/store"
)

// RevealResult describes a single reveal
type RevealResult struct {
	Player models.Player
}

// RevealBatchResult lists the players revealed by a reveal-all
type RevealBatchResult struct {
	Revealed []models.Player
}

// EliminationResult describes an elimination and, if it ended the game, the winner
type EliminationResult struct {
	Player models.Player
	Winner models.Faction
}

// Ended reports whether the elimination finished the game
func (r EliminationResult) Ended() bool {
	return r.Winner != models.FactionNone
}

// setup is the validated shape of a new game
type setup struct {
	MaxPlayers int `validate:"seats"`
	MaxMafia   int `validate:"min=1"`
}

func setupStructLevel(sl validator.StructLevel) {
	s := sl.Current().Interface().(setup)
	if s.MaxMafia+2 > s.MaxPlayers {
		sl.ReportError(s.MaxMafia, "MaxMafia", "MaxMafia", "townseats", "")
	}
}

// Service drives games through their lifecycle
type Service struct {
	games    *store.GameStore
	notifier Notifier
	images   RoleImages
	pool     *dispatch.Pool
	validate *validator.Validate

	defaultPlayers int
	defaultMafia   int

	randMu sync.Mutex
	src    Source

	// membership serializes operations that touch user bindings
	membership sync.Mutex
}

// Option configures a Service
type Option func(*Service)

// WithSource sets the randomness used for role and seat shuffles
func WithSource(src Source) Option {
	return func(s *Service) { s.src = src }
}

// WithPool sets the pool used for batched notifications
func WithPool(p *dispatch.Pool) Option {
	return func(s *Service) { s.pool = p }
}

// WithImages sets the role image table
func WithImages(images RoleImages) Option {
	return func(s *Service) { s.images = images }
}

// WithDefaults sets the seats and mafia size used when the owner omits them
func WithDefaults(players, mafia int) Option {
	return func(s *Service) {
		s.defaultPlayers = players
		s.defaultMafia = mafia
	}
}

// NewService creates a lifecycle service over the given store
func NewService(games *store.GameStore, notifier Notifier, opts ...Option) *Service {
	v := validator.New()
	v.RegisterAlias("seats", fmt.Sprintf("min=%d,max=%d", MinPlayers, MaxPlayersLimit))
	v.RegisterStructValidation(setupStructLevel, setup{})

	s := &Service{
		games:          games,
		notifier:       notifier,
		images:         DefaultRoleImages("assets"),
		validate:       v,
		defaultPlayers: DefaultMaxPlayers,
		defaultMafia:   DefaultMaxMafia,
		src:            DefaultSource,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Defaults returns the game size used when the owner does not give one
func (s *Service) Defaults() (maxPlayers, maxMafia int) {
	return s.defaultPlayers, s.defaultMafia
}

// Create opens a new game in the waiting phase
func (s *Service) Create(ctx context.Context, ownerID int64, ownerName string, maxPlayers, maxMafia int) (*models.Game, error) {
	s.membership.Lock()
	defer s.membership.Unlock()

	if existing, ok := s.games.GameFor(ownerID); ok {
		if existing.CurrentStatus() != models.StatusEnded {
			return nil, ErrAlreadyInGame
		}
		s.games.Unbind(ownerID)
	}

	if err := s.validate.Struct(setup{MaxPlayers: maxPlayers, MaxMafia: maxMafia}); err != nil {
		return nil, fmt.Errorf("%w: %d players with %d mafia: %v", ErrInvalidSetup, maxPlayers, maxMafia, err)
	}

	g := &models.Game{
		ID:         GetUniqueGameID(s.games),
		OwnerID:    ownerID,
		OwnerName:  ownerName,
		Players:    []*models.Player{},
		MaxPlayers: maxPlayers,
		MaxMafia:   maxMafia,
		Status:     models.StatusWaiting,
	}
	s.games.Set(g.ID, g)
	s.games.Bind(ownerID, g.ID)

	zap.L().Info("game created",
		zap.String("game_id", g.ID),
		zap.Int64("owner_id", ownerID),
		zap.Int("max_players", maxPlayers),
		zap.Int("max_mafia", maxMafia))
	return g, nil
}

// Join seats a user in a game that has not ended yet
func (s *Service) Join(ctx context.Context, gameID string, userID int64, userName string) error {
	s.membership.Lock()
	defer s.membership.Unlock()

	g, ok := s.games.Get(gameID)
	if !ok {
		return ErrGameNotFound
	}

	g.Lock()
	switch {
	case g.OwnerID == userID:
		g.Unlock()
		return ErrOwnerCannotJoin
	case g.Status == models.StatusEnded:
		g.Unlock()
		return ErrGameEnded
	case g.IsFull():
		g.Unlock()
		return ErrGameFull
	}
	if _, joined := g.Player(userID); joined {
		g.Unlock()
		return ErrAlreadyJoined
	}
	if other, bound := s.games.GameFor(userID); bound && other != g && other.CurrentStatus() != models.StatusEnded {
		g.Unlock()
		return ErrAlreadyInGame
	}

	g.Players = append(g.Players, &models.Player{
		ID:      userID,
		Name:    userName,
		IsAlive: true,
		Order:   len(g.Players),
	})
	s.games.Bind(userID, g.ID)
	ownerID, count, seats := g.OwnerID, len(g.Players), g.MaxPlayers
	g.Unlock()

	zap.L().Info("player joined",
		zap.String("game_id", gameID),
		zap.Int64("user_id", userID),
		zap.Int("players", count))

	if _, err := s.notifier.SendText(ctx, ownerID, joinedText(userName, count, seats)); err != nil {
		logDispatchError(gameID, ownerID, err)
	}
	return nil
}

// Start assigns roles and reseats the players. Only the owner may start a full, waiting game.
func (s *Service) Start(ctx context.Context, gameID string, actorID int64) error {
	g, ok := s.games.Get(gameID)
	if !ok {
		return ErrGameNotFound
	}

	g.Lock()
	defer g.Unlock()

	if g.OwnerID != actorID {
		return ErrNotAuthorized
	}
	if g.Status != models.StatusWaiting {
		return fmt.Errorf("%w: game is %s", ErrInvalidPhase, g.Status)
	}
	if len(g.Players) != g.MaxPlayers {
		return fmt.Errorf("%w: need %d players (excluding owner), have %d", ErrNotEnoughPlayers, g.MaxPlayers, len(g.Players))
	}
	if err := ValidateSetup(g.MaxPlayers, g.MaxMafia); err != nil {
		return err
	}

	s.randMu.Lock()
	roles := GenerateRoles(s.src, g.MaxPlayers, g.MaxMafia)
	seats := Shuffle(s.src, g.Players)
	s.randMu.Unlock()

	for i, p := range seats {
		p.Role = roles[i]
		p.Order = i + 1
		p.Revealed = false
	}
	g.Players = seats
	g.Status = models.StatusActive

	zap.L().Info("roles assigned", zap.String("game_id", gameID), zap.Int("players", len(seats)))
	return nil
}

// Reveal shows one player's role to the owner and to the player
func (s *Service) Reveal(ctx context.Context, gameID string, actorID, targetID int64) (RevealResult, error) {
	g, ok := s.games.Get(gameID)
	if !ok {
		return RevealResult{}, ErrGameNotFound
	}

	g.Lock()
	if err := ownerInActiveGame(g, actorID); err != nil {
		g.Unlock()
		return RevealResult{}, err
	}
	target, found := g.Player(targetID)
	if !found || !target.HasRole() {
		g.Unlock()
		return RevealResult{}, ErrPlayerNotFound
	}
	target.Revealed = true
	snapshot := *target
	prev := g.LastReveal
	g.LastReveal = nil
	ownerID := g.OwnerID
	g.Unlock()

	s.retract(ctx, prev)

	image := s.images[snapshot.Role]
	ref, err := s.notifier.SendImage(ctx, ownerID, image, ownerRevealCaption(&snapshot))
	if err != nil {
		logDispatchError(gameID, ownerID, err)
	} else {
		// an overlapping reveal may have recorded its image meanwhile, the latest one stays
		g.Lock()
		stale := g.LastReveal
		g.LastReveal = &ref
		g.Unlock()
		s.retract(ctx, stale)
	}
	if _, err := s.notifier.SendImage(ctx, snapshot.ID, image, playerRevealCaption(snapshot.Role)); err != nil {
		logDispatchError(gameID, snapshot.ID, err)
	}

	zap.L().Info("role revealed", zap.String("game_id", gameID), zap.Int64("user_id", targetID))
	return RevealResult{Player: snapshot}, nil
}

// RevealAll sends every unrevealed player their role. Players already revealed are skipped.
func (s *Service) RevealAll(ctx context.Context, gameID string, actorID int64) (RevealBatchResult, error) {
	g, ok := s.games.Get(gameID)
	if !ok {
		return RevealBatchResult{}, ErrGameNotFound
	}

	g.Lock()
	if err := ownerInActiveGame(g, actorID); err != nil {
		g.Unlock()
		return RevealBatchResult{}, err
	}
	var batch []models.Player
	for _, p := range g.Players {
		if p.Revealed || !p.HasRole() {
			continue
		}
		p.Revealed = true
		batch = append(batch, *p)
	}
	var prev *models.MessageRef
	if len(batch) > 0 {
		prev = g.LastReveal
		g.LastReveal = nil
	}
	ownerID := g.OwnerID
	g.Unlock()

	if len(batch) == 0 {
		return RevealBatchResult{}, nil
	}

	s.retract(ctx, prev)

	jobs := lo.Map(batch, func(p models.Player, _ int) func() {
		return func() {
			if _, err := s.notifier.SendImage(ctx, p.ID, s.images[p.Role], playerRevealCaption(p.Role)); err != nil {
				logDispatchError(gameID, p.ID, err)
			}
		}
	})
	s.pool.Run(ctx, jobs...)

	if _, err := s.notifier.SendText(ctx, ownerID, AllRevealedText); err != nil {
		logDispatchError(gameID, ownerID, err)
	}

	zap.L().Info("all roles revealed", zap.String("game_id", gameID), zap.Int("revealed", len(batch)))
	return RevealBatchResult{Revealed: batch}, nil
}

// Eliminate takes a living player out of the game and ends it when a faction has won
func (s *Service) Eliminate(ctx context.Context, gameID string, actorID, targetID int64) (EliminationResult, error) {
	g, ok := s.games.Get(gameID)
	if !ok {
		return EliminationResult{}, ErrGameNotFound
	}

	g.Lock()
	if err := ownerInActiveGame(g, actorID); err != nil {
		g.Unlock()
		return EliminationResult{}, err
	}
	target, found := g.Player(targetID)
	if !found {
		g.Unlock()
		return EliminationResult{}, ErrPlayerNotFound
	}
	if !target.IsAlive {
		g.Unlock()
		return EliminationResult{}, fmt.Errorf("%w: %s is already eliminated", ErrPlayerNotFound, target.Name)
	}
	target.IsAlive = false
	result := EliminationResult{Player: *target, Winner: CheckWinner(g.Players)}

	var summary string
	var recipients []int64
	if result.Ended() {
		summary, recipients = s.end(g, result.Winner)
	}
	g.Unlock()

	zap.L().Info("player eliminated", zap.String("game_id", gameID), zap.Int64("user_id", targetID))

	if result.Ended() {
		s.broadcast(ctx, gameID, recipients, summary)
	}
	return result, nil
}

// end finishes the game and returns the summary with its recipients (must be called with lock held)
func (s *Service) end(g *models.Game, winner models.Faction) (string, []int64) {
	g.Status = models.StatusEnded
	g.Winner = winner

	recipients := append([]int64{g.OwnerID}, lo.Map(g.Players, func(p *models.Player, _ int) int64 { return p.ID })...)

	zap.L().Info("game ended", zap.String("game_id", g.ID), zap.String("winner", string(winner)))
	return Summary(winner, g.Players), recipients
}

// Abort removes the game and releases everyone bound to it. Only the owner may abort.
func (s *Service) Abort(ctx context.Context, gameID string, actorID int64) error {
	s.membership.Lock()
	defer s.membership.Unlock()

	g, ok := s.games.Get(gameID)
	if !ok {
		return ErrGameNotFound
	}

	g.RLock()
	if g.OwnerID != actorID {
		g.RUnlock()
		return ErrNotAuthorized
	}
	members := append([]int64{g.OwnerID}, lo.Map(g.Players, func(p *models.Player, _ int) int64 { return p.ID })...)
	g.RUnlock()

	s.games.Delete(gameID, members...)

	zap.L().Info("game aborted", zap.String("game_id", gameID), zap.Int64("owner_id", actorID))
	return nil
}

// CurrentGame returns the game the user owns or plays in
func (s *Service) CurrentGame(userID int64) (*models.Game, error) {
	g, ok := s.games.GameFor(userID)
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Lookup returns a game by id
func (s *Service) Lookup(gameID string) (*models.Game, error) {
	g, ok := s.games.Get(gameID)
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Player returns a copy of one player as seen by the owner
func (s *Service) Player(gameID string, actorID, targetID int64) (models.Player, error) {
	g, ok := s.games.Get(gameID)
	if !ok {
		return models.Player{}, ErrGameNotFound
	}

	g.RLock()
	defer g.RUnlock()
	if g.OwnerID != actorID {
		return models.Player{}, ErrNotAuthorized
	}
	p, found := g.Player(targetID)
	if !found {
		return models.Player{}, ErrPlayerNotFound
	}
	return *p, nil
}

// Dashboard builds the owner's control view and retracts the last reveal image
func (s *Service) Dashboard(ctx context.Context, gameID string, actorID int64) (DashboardView, error) {
	g, ok := s.games.Get(gameID)
	if !ok {
		return DashboardView{}, ErrGameNotFound
	}

	g.Lock()
	if g.OwnerID != actorID {
		g.Unlock()
		return DashboardView{}, ErrNotAuthorized
	}
	view := BuildDashboard(g)
	var prev *models.MessageRef
	if g.Status != models.StatusEnded {
		prev = g.LastReveal
		g.LastReveal = nil
	}
	g.Unlock()

	s.retract(ctx, prev)
	return view, nil
}

func (s *Service) retract(ctx context.Context, ref *models.MessageRef) {
	if ref == nil {
		return
	}
	if err := s.notifier.DeleteMessage(ctx, *ref); err != nil {
		zap.L().Debug("retract reveal failed", zap.Int64("chat_id", ref.ChatID), zap.Error(err))
	}
}

func (s *Service) broadcast(ctx context.Context, gameID string, chatIDs []int64, text string) {
	jobs := lo.Map(chatIDs, func(id int64, _ int) func() {
		return func() {
			if _, err := s.notifier.SendText(ctx, id, text); err != nil {
				logDispatchError(gameID, id, err)
			}
		}
	})
	s.pool.Run(ctx, jobs...)
}

// ownerInActiveGame checks the preconditions shared by in-game owner actions (must be called with lock held)
func ownerInActiveGame(g *models.Game, actorID int64) error {
	if g.OwnerID != actorID {
		return ErrNotAuthorized
	}
	switch g.Status {
	case models.StatusEnded:
		return ErrGameEnded
	case models.StatusWaiting:
		return fmt.Errorf("%w: roles are not assigned yet", ErrInvalidPhase)
	}
	return nil
}

func logDispatchError(gameID string, chatID int64, err error) {
	zap.L().Warn("notification dispatch failed",
		zap.String("game_id", gameID),
		zap.Int64("chat_id", chatID),
		zap.Error(err))
}
