package session

import (
	"github.com/vovakirdan/sancho-bros/internal/audio"
	"github.com/vovakirdan/sancho-bros/internal/core"
)

// IsStomp classifies a player/target contact. It is a stomp only when the
// player is falling and its bottom edge is above the target's center.
func IsStomp(playerVelocityY float64, player, target core.Rect) bool {
	return playerVelocityY > 0 && player.Bottom() < target.CenterY()
}

// KnockbackDirection pushes the player away from the target's center.
func KnockbackDirection(player, target core.Rect) int {
	if player.CenterX() < target.CenterX() {
		return -1
	}
	return 1
}

// Camera returns the horizontal scroll offset keeping the player centered
// without showing anything past the level edges.
func Camera(playerCenterX, viewportWidth, levelWidth float64) float64 {
	maxX := levelWidth - viewportWidth
	if maxX < 0 {
		maxX = 0
	}
	return core.ClampF(playerCenterX-viewportWidth/2, 0, maxX)
}

// update runs one tick of normal gameplay.
func (s *Session) update(in core.InputFrame) {
	l := s.level
	p := l.Player

	p.Update(in, l.Platforms, l.Width)
	if in.Pressed(core.ActionShoot) {
		if laser, ok := p.Shoot(); ok {
			l.Lasers = append(l.Lasers, laser)
		}
	}

	for _, e := range l.Enemies {
		e.Update(l.Platforms)
	}
	if b := l.Boss; b != nil {
		b.Update(l.Platforms)
		if b.CanThrow() {
			l.Mermeladas = append(l.Mermeladas, b.Throw()...)
		}
	}
	for _, a := range l.Powerups {
		a.Update()
	}
	for _, las := range l.Lasers {
		las.Update(l.Width)
	}
	for _, m := range l.Mermeladas {
		m.Update(l.Width)
	}

	s.resolveEnemyContacts()
	s.resolveBossContact()
	s.resolveLaserHits()
	s.resolveMermeladaHits()
	s.collectPowerups()
	s.checkPit()
	l.Prune()

	if p.Lives <= 0 {
		s.gameOver()
		return
	}
	if !s.complete && p.Rect.Intersects(l.Goal.Rect) {
		s.completeLevel()
	}
}

func (s *Session) resolveEnemyContacts() {
	p := s.level.Player
	for _, e := range s.level.Enemies {
		if !e.Active() || !p.Rect.Intersects(e.Rect) {
			continue
		}
		if IsStomp(p.VelocityY, p.Rect, e.Rect) {
			if e.Squash() {
				s.score += s.cfg.Scoring.Stomp
			}
			p.Bounce()
			continue
		}
		s.damagePlayer(KnockbackDirection(p.Rect, e.Rect))
	}
}

func (s *Session) resolveBossContact() {
	p, b := s.level.Player, s.level.Boss
	if b == nil || b.Defeated() || !p.Rect.Intersects(b.Rect) {
		return
	}
	if IsStomp(p.VelocityY, p.Rect, b.Rect) {
		s.hitBoss(s.cfg.Scoring.Stomp)
		p.Bounce()
		return
	}
	s.damagePlayer(KnockbackDirection(p.Rect, b.Rect))
}

// resolveLaserHits lets each laser hit at most one target, the first
// in container order, enemies before the boss.
func (s *Session) resolveLaserHits() {
	l := s.level
	for _, las := range l.Lasers {
		if !las.Active {
			continue
		}
		for _, e := range l.Enemies {
			if e.Active() && las.Rect.Intersects(e.Rect) {
				las.Active = false
				if e.Squash() {
					s.score += s.cfg.Scoring.LaserKill
				}
				break
			}
		}
		if las.Active && l.Boss != nil && !l.Boss.Defeated() && las.Rect.Intersects(l.Boss.Rect) {
			las.Active = false
			s.hitBoss(s.cfg.Scoring.BossHit)
		}
	}
}

// hitBoss damages the boss by one. points is the stomp or laser award.
func (s *Session) hitBoss(points int) {
	b := s.level.Boss
	if !b.TakeDamage(1) {
		return
	}
	s.score += points
	if b.Defeated() {
		s.score += s.cfg.Scoring.BossDefeat
	}
}

func (s *Session) resolveMermeladaHits() {
	p := s.level.Player
	for _, m := range s.level.Mermeladas {
		if !m.Active || p.Invulnerable() || !p.Rect.Intersects(m.Rect) {
			continue
		}
		m.Active = false
		s.damagePlayer(KnockbackDirection(p.Rect, m.Rect))
	}
}

func (s *Session) collectPowerups() {
	p := s.level.Player
	for _, a := range s.level.Powerups {
		if a.Collected || !p.Rect.Intersects(a.Rect) {
			continue
		}
		a.Collect()
		p.CollectPowerup()
		s.score += s.cfg.Scoring.Powerup
	}
}

func (s *Session) damagePlayer(dir int) {
	p := s.level.Player
	if p.TakeDamage(dir) {
		s.lives = p.Lives
	}
}

// checkPit costs a life whenever the player drops below the viewport,
// invulnerable or not.
func (s *Session) checkPit() {
	p := s.level.Player
	if p.Rect.Top() <= s.cfg.Window.Height {
		return
	}
	p.LoseLife()
	s.lives = p.Lives
	if p.Lives > 0 {
		s.level.RespawnPlayer()
	}
}

func (s *Session) completeLevel() {
	s.complete = true
	s.completeTimer.Start()
	s.audio.Emit(audio.SoundLevelComplete)

	n := s.level.Number
	if err := s.store.RecordLevelComplete(n, s.score); err != nil {
		s.logger.Warn("record level complete failed", "level", n, "error", err)
	}
	if n > s.highestLevel {
		s.highestLevel = n
	}
	if s.score > s.highScore {
		s.highScore = s.score
	}
	s.logger.Info("level complete", "level", n, "score", s.score)
}
