package sweetdata

// Clipboard fixtures captured from real pastes. Tabs are significant.

const canadianCitiesTable = "Rank (2021)\tMunicipality\tProvince\tMunicipal status\tPopulation (2021)\tPopulation (2016)\tChange\tLand area (km2)\tPopulation density (/km2)\n" +
	"1\n" +
	"Toronto\tOntario\tCity\t2,794,356\t2,731,571\t+2.3%\t631.1\t4,427.8\n" +
	"2\n" +
	"Montreal\tQuebec\tVille\t1,762,949\t1,704,694\t+3.4%\t364.74\t4,833.4\n" +
	"3\n" +
	"Calgary\tAlberta\tCity\t1,306,784\t1,239,220\t+5.5%\t820.62\t1,592.4\n" +
	"4\n" +
	"Ottawa\tOntario\tCity\t1,017,449\t934,243\t+8.9%\t2788.2\t364.9\n" +
	"5\n" +
	"Edmonton\tAlberta\tCity\t1,010,899\t933,088\t+8.3%\t765.61\t1,320.4\n" +
	"6\n" +
	"Winnipeg\tManitoba\tCity\t749,607\t705,244\t+6.3%\t461.78\t1,623.3\n" +
	"7\n" +
	"Mississauga\tOntario\tCity\t717,961\t721,599\t−0.5%\t292.74\t2,452.6\n" +
	"8\n" +
	"Vancouver\tBritish Columbia\tCity\t662,248\t631,486\t+4.9%\t115.18\t5,749.7\n" +
	"9\n" +
	"Brampton\tOntario\tCity\t656,480\t593,638\t+10.6%\t265.89\t2,469.0\n" +
	"10\n" +
	"Hamilton\tOntario\tCity\t569,353\t536,917\t+6.0%\t1118.31\t509.1"

const usCitiesTable = "\t2020 density\tLocation\n" +
	"mi2\tkm2\t/ mi2\t/ km2\n" +
	"New York[c]\tNY\t8,478,072\t8,804,190\t−3.70%\t300.5\t778.3\t29,298\t11,312\t40.66°N 73.94°W\n" +
	"Los Angeles\tCA\t3,878,704\t3,898,747\t−0.51%\t469.5\t1,216.0\t8,304\t3,206\t34.02°N 118.41°W\n" +
	"Chicago\tIL\t2,721,308\t2,746,388\t−0.91%\t227.7\t589.7\t12,061\t4,657\t41.84°N 87.68°W\n" +
	"Houston\tTX\t2,390,125\t2,304,580\t+3.71%\t640.4\t1,658.6\t3,599\t1,390\t29.79°N 95.39°W\n" +
	"Phoenix\tAZ\t1,673,164\t1,608,139\t+4.04%\t518.0\t1,341.6\t3,105\t1,199\t33.57°N 112.09°W\n" +
	"Philadelphia[d]\tPA\t1,573,916\t1,603,797\t−1.86%\t134.4\t348.1\t11,933\t4,607\t40.01°N 75.13°W\n" +
	"San Antonio\tTX\t1,526,656\t1,434,625\t+6.41%\t498.8\t1,291.9\t2,876\t1,110\t29.46°N 98.52°W\n" +
	"San Diego\tCA\t1,404,452\t1,386,932\t+1.26%\t325.9\t844.1\t4,256\t1,643\t32.81°N 117.14°W\n" +
	"Dallas\tTX\t1,326,087\t1,304,379\t+1.66%\t339.6\t879.6\t3,841\t1,483\t32.79°N 96.77°W\n" +
	"Jacksonville[e]\tFL\t1,009,833\t949,611\t+6.34%\t747.3\t1,935.5\t1,271\t491\t30.34°N 81.66°W"

const whalesTable = "Rank\tAnimal\tAverage mass\n" +
	"[tonnes]\tMaximum mass\n" +
	"[tonnes]\tAverage total length\n" +
	"[m (ft)]\n" +
	"1\tBlue whale[15]\t110[16]\t190[1]\t24 (79)[17]\n" +
	"2\tNorth Pacific right whale\t60[18]\t120[1]\t15.5 (51)[16]\n" +
	"3\tSouthern right whale\t58[16]\t110[19]\t15.25 (50)[16]\n" +
	"4\tFin whale\t57[16]\t120[19][20]\t19.5 (64)[16]\n" +
	"5\tBowhead whale\t54.5[16][21]\t120[1]\t15 (49)[16]\n" +
	"6\tNorth Atlantic right whale\t54[16][22]\t110[19][23]\t15 (49)[16][23]\n" +
	"7\tSperm whale\t31.25[16][24]\t57[25]\t13.25 (43.5)[16][24]\n" +
	"8\tHumpback whale\t29[16][26]\t48[27]\t13.5 (44)[16]\n" +
	"9\tSei whale\t22.5[16]\t45[28]\t14.8 (49)[16]\n" +
	"10\tGray whale\t19.5[16]\t45[29]\t13.5 (44)[16]"

const reptilesTable = "Rank\tAnimal\tAverage mass\n" +
	"[kg (lb)]\tMaximum mass\n" +
	"[kg (lb)]\tAverage total length\n" +
	"[m (ft)]\n" +
	"1\tSaltwater crocodile\t450 (1,000)[92][93]\t2,000 (4,409 lbs)[94][95]\t4.5 (14.8)[92][96]\n" +
	"2\tNile crocodile\t410 (900)[97]\t1,090 (2,400)[1]\t4.2 (13.8)[97]\n" +
	"3\tOrinoco crocodile\t380 (840)[citation needed]\t1,100 (2,400)[citation needed]\t4.1 (13.5)[98][99]\n" +
	"4\tLeatherback sea turtle\t364 (800)[100][101]\t932 (2,050)[1]\t2.0 (6.6)[1]\n" +
	"5\tAmerican crocodile\t336 (740)[102]\t1,000 (2,200)[103]\t4.0 (13.1)[104][105]"

const netflixTable = "Title\tNetflix release date\tDirector(s)\tWriter(s)\tProducer(s)\tComposer(s)\tCo-production with\tAnimation service(s)\tNotes\n" +
	"Story\tScreenplay\n" +
	"Klaus\tNovember 15, 2019\tSergio Pablos\n" +
	"Co-director:\n" +
	"Carlos Martínez López\tSergio Pablos\tSergio Pablos\n" +
	"Jim Mahoney\n" +
	"Zach Lewis\tJinko Gotoh\n" +
	"Sergio Pablos\n" +
	"Marisa Roman\n" +
	"Matt Teevan\n" +
	"Mercedes Gamero\n" +
	"Mikel Lejarza\n" +
	"Gustavo Ferrada\tAlfonso G. Aguilar\tThe SPA Studios\n" +
	"Atresmedia Cine\tYowza! Animation\tFirst feature film\n" +
	"Copyright by Sergio Pablos\n" +
	"The Willoughbys\tApril 22, 2020\tKris Pearn\n" +
	"Co-director:\n" +
	"Rob Lodermeier\tKris Pearn\tKris Pearn\n" +
	"Mark Stanleigh\tBrenda Gilbert\n" +
	"Luke Carroll\tMark Mothersbaugh\tBron Animation\n" +
	"Creative Wealth Media\tBron Animation\tBased on the novel of the same name by Lois Lowry\n" +
	"Over the Moon\tOctober 23, 2020\tGlen Keane\n" +
	"Co-director:\n" +
	"John Kahrs\tAudrey Wells\tGennie Rim\n" +
	"Peilin Chou\tSteven Price (score)\n" +
	"Christopher Curtis\n" +
	"Marjorie Duffield\n" +
	"Helen Park (songs)\tPearl Studio\n" +
	"Glen Keane Productions\tPearl Studio\n" +
	"Sony Pictures Imageworks\t\n" +
	"Arlo the Alligator Boy\tApril 16, 2021\tRyan Crego\tRyan Crego\n" +
	"Clay Senechal\t—\tAlex Geringas (score)\n" +
	"Alex Geringas\n" +
	"Ryan Crego (songs)\tTitmouse, Inc.\t—\tPrequel to the series I Heart Arlo"

const moviesTable = "Highest-grossing films of 2025[12][13]\n" +
	"Rank\tTitle\tDistributor\tWorldwide gross\n" +
	"1\tNe Zha 2\tBeijing Enlight\t$2,217,080,000\n" +
	"2\tLilo & Stitch †\tDisney\t$1,019,581,728\n" +
	"3\tA Minecraft Movie\tWarner Bros.\t$955,149,195\n" +
	"4\tJurassic World Rebirth †\tUniversal\t$766,011,000\n" +
	"5\tHow to Train Your Dragon †\t\t$618,347,000\n" +
	"6\tMission: Impossible – The Final Reckoning †\tParamount\t$594,218,706\n" +
	"7\tSuperman †\tWarner Bros.\t$551,256,392\n" +
	"8\tF1 †\tWarner Bros. / Apple\t$546,291,000\n" +
	"9\tDetective Chinatown 1900\tWanda\t$503,214,752[14]\n" +
	"10\tCaptain America: Brave New World\tDisney\t$415,101,577"

const buildingsTable = "\tName\tHeight[14]\tFloors\tImage\tCity\tCountry\tYear\tComments\tRef\n" +
	"m\tft\n" +
	"1\tBurj Khalifa\t828\t2,717\t163 (+ 2 below ground)\t\tDubai\t United Arab Emirates\t2010\tTallest building in the world since 2009\t[15]\n" +
	"2\tMerdeka 118\t678.9\t2,227\t118 (+ 5 below ground)\t\tKuala Lumpur\t Malaysia\t2024\tTallest building in Southeast Asia\t[16]\n" +
	"3\tShanghai Tower\t632\t2,073\t128 (+ 5 below ground)\t\tShanghai\t China\t2015\tTallest building in East Asia\t[17]\n" +
	"4\tThe Clock Towers\t601\t1,972\t120 (+ 3 below ground)\t\tMecca\t Saudi Arabia\t2012\tTallest building in Saudi Arabia\t[18]"

const footnotesTable = "Country\tCapital\tPopulation[a]\tGDP[b]\n" +
	"France\tParis[c]\t67,391,582\t2,938\n" +
	"Germany\tBerlin\t83,166,711\t4,223\n" +
	"Italy\tRome[d]\t60,317,116\t2,107"

const irregularTable = "Name\tAge\tCity\tCountry\n" +
	"John\t25\t\tUSA\n" +
	"\t30\tLondon\tUK\n" +
	"Sarah\t\tParis\tFrance\n" +
	"Mike\t35\tTokyo\t"

const spanningCitiesTable = "Rank\tCity\tPopulation\tArea\tDensity\n" +
	"\t\t2020\t2010\tkm²\tmi²\t/km²\t/mi²\n" +
	"1\tTokyo\t37,833,000\t36,923,000\t2,188\t845\t17,298\t44,802\n" +
	"2\tDelhi\t30,291,000\t22,654,000\t1,484\t573\t20,411\t52,864\n" +
	"3\tShanghai\t27,058,000\t20,860,000\t6,341\t2,448\t4,267\t11,052"

const lineBreakHeadersTable = "Country\tPopulation\n" +
	"(millions)\tGDP\n" +
	"(trillion USD)\tArea\n" +
	"(million km²)\n" +
	"China\t1439.3\t17.7\t9.6\n" +
	"India\t1380.0\t3.4\t3.3\n" +
	"United States\t331.0\t23.3\t9.8"
