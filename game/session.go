package game

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"

	"godreidel/charting"
	"godreidel/config"
	"godreidel/dreidel"
	"godreidel/stats"
	"godreidel/storage"
	"godreidel/utils"
)

// Session owns one dreidel and spins it on a ticker until stopped. All spins
// happen on the main loop goroutine; the generator itself is never shared.
// Only the tally is read from the scheduler goroutine, under tallyMtx.
type Session struct {
	Config     *config.Config
	Name       string
	Seed       uint64
	dreidel    *dreidel.Dreidel
	tally      *stats.Tally
	tallyMtx   sync.Mutex
	db         *bbolt.DB
	summaries  *storage.SummaryCache
	charts     *charting.Service
	scheduler  *cron.Cron
	watcher    *fsnotify.Watcher
	reload     chan struct{}
	quit       chan struct{}
	wg         sync.WaitGroup
	spinsEnded bool
}

func NewSession(cfg *config.Config, db *bbolt.DB) (*Session, error) {
	var seed = cfg.Seed
	if seed == 0 {
		seed = uint64(utils.RandomSeed())
	}
	spinner, err := dreidel.New(seed)
	if err != nil {
		return nil, err
	}
	var name = cfg.SessionName
	if name == "" {
		name = time.Now().Format("20060102-150405")
	}
	summaries := storage.NewSummaryCache(db)
	return &Session{
		Config:    cfg,
		Name:      name,
		Seed:      seed,
		dreidel:   spinner,
		tally:     stats.NewTally(),
		db:        db,
		summaries: summaries,
		charts:    charting.NewService(summaries),
		reload:    make(chan struct{}, 1),
	}, nil
}

func (s *Session) Start() {
	if s.quit != nil {
		return
	}
	s.quit = make(chan struct{})
	log.WithFields(log.Fields{
		"session":  s.Name,
		"seed":     s.Seed,
		"interval": s.Config.SpinInterval(),
	}).Println("Session started")
	s.scheduler = cron.New()
	if _, err := s.scheduler.AddFunc(s.Config.Summary(), s.LogSummary); err != nil {
		log.WithError(err).Error("Could not schedule summaries")
	}
	s.scheduler.Start()
	if watcher, err := utils.NewFileWatcher(config.ConfigPath(), s.requestReload); err != nil {
		log.WithError(err).Warn("Could not watch config")
	} else {
		s.watcher = watcher
	}
	s.wg.Add(1)
	go s.mainLoop()
}

func (s *Session) Stop() {
	if s.quit == nil {
		return
	}
	close(s.quit)
	s.wg.Wait()
	s.quit = nil
	s.scheduler.Stop()
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	s.LogSummary()
	if s.Config.Chart {
		if _, err := s.charts.RenderSession(s.Name); err != nil {
			log.WithError(err).Error("Could not render session chart")
		}
	}
	log.WithField("session", s.Name).Println("Session stopped")
}

func (s *Session) mainLoop() {
	spinTicker := time.NewTicker(s.Config.SpinInterval())
	for {
		select {
		case <-s.quit:
			spinTicker.Stop()
			s.wg.Done()
			return
		case <-s.reload:
			s.reloadConfig()
			spinTicker.Stop()
			spinTicker = time.NewTicker(s.Config.SpinInterval())
		case <-spinTicker.C:
			if s.spinsEnded {
				continue
			}
			s.spin()
			if s.Config.MaxSpins > 0 && uint64(s.tally.Total()) >= s.Config.MaxSpins {
				s.spinsEnded = true
				log.WithField("spins", s.tally.Total()).Println("Spin limit reached")
			}
		}
	}
}

func (s *Session) spin() {
	face := s.dreidel.Spin()
	s.tallyMtx.Lock()
	s.tally.Add(face)
	s.tallyMtx.Unlock()
	if err := storage.WriteSpin(s.db, s.Name, time.Now(), face); err != nil {
		log.WithError(err).Error("Could not record spin")
	}
	s.summaries.Invalidate(s.Name)
	log.WithFields(log.Fields{
		"face":    face,
		"letter":  face.Letter(),
		"meaning": face.Meaning(),
	}).Info("Spin")
}

func (s *Session) requestReload() {
	select {
	case s.reload <- struct{}{}:
	default:
	}
}

// reloadConfig picks up interval, spin limit and chart settings. The seed is
// deliberately left alone: reseeding mid-session would splice two unrelated
// sequences.
func (s *Session) reloadConfig() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Error("Could not reload config")
		return
	}
	if cfg.Seed != 0 && cfg.Seed != s.Config.Seed {
		log.Println("Seed changes apply on the next session")
	}
	cfg.Seed = s.Config.Seed
	s.Config = cfg
	s.spinsEnded = false
	log.WithField("interval", cfg.SpinInterval()).Println("Config reloaded")
}

// TotalSpins reports the running spin count.
func (s *Session) TotalSpins() utils.SpinCount {
	s.tallyMtx.Lock()
	defer s.tallyMtx.Unlock()
	return s.tally.Total()
}

// LogSummary emits the running face distribution. Wired to the cron schedule
// while the session runs, and called once more on Stop.
func (s *Session) LogSummary() {
	s.tallyMtx.Lock()
	fields := s.tally.Fields()
	s.tallyMtx.Unlock()
	log.WithFields(fields).Println("Distribution summary")
}
