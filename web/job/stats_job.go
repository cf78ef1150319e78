package job

import (
	"jokes-web/logger"
	"jokes-web/web/service"
)

// StatsJob periodically logs how many users and jokes the site holds.
type StatsJob struct {
	userService *service.UserService
	jokeService *service.JokeService
}

func NewStatsJob(userService *service.UserService, jokeService *service.JokeService) *StatsJob {
	return &StatsJob{
		userService: userService,
		jokeService: jokeService,
	}
}

// Run implements cron.Job.
func (j *StatsJob) Run() {
	users, err := j.userService.CountUsers()
	if err != nil {
		logger.Warning("stats job count users err:", err)
		return
	}
	jokes, err := j.jokeService.CountJokes()
	if err != nil {
		logger.Warning("stats job count jokes err:", err)
		return
	}
	logger.Infof("site stats: %d users, %d jokes", users, jokes)
}
